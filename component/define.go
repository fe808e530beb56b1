package component

import "github.com/raskgo/raskgo/vdom"

// RenderFunc is the closure a component's Setup returns; it is called on
// initial render and every re-render to produce the component's vdom
// subtree (spec §4.3 "setup returns a render function").
//
// In the original spec a setup result that isn't a function is an error
// routed to the nearest catch-error boundary. Typing Setup's return as
// RenderFunc makes that particular failure mode unrepresentable in Go —
// the only remaining runtime surface is a nil RenderFunc, which Render
// substitutes an empty text node for (see runSetup).
type RenderFunc func() vdom.Node

// Definition describes a component: a name (used only for diagnostics)
// and a setup function run once per instance (spec §4.3).
type Definition struct {
	Name  string
	Setup func(ctx *SetupContext) RenderFunc
}

// Instantiate satisfies vdom.ComponentType, producing a fresh Instance
// for a new mount of this definition at a vdom position (spec §4.3
// "created on first render of its vdom position").
func (d *Definition) Instantiate(ctx vdom.InstanceContext) vdom.ComponentInstance {
	var parent *Instance
	if p, ok := ctx.Parent.(*Instance); ok {
		parent = p
	}
	return newInstance(d, nil, parent)
}

// New builds a vdom.Component node referencing this definition, for use
// inside another component's render function.
func (d *Definition) New(props map[string]any, key any) *vdom.Component {
	return &vdom.Component{Type: d, Props: props, Key: key}
}

// SetupContext is the handle a Setup function uses to read reactive
// props, register lifecycle callbacks, and interact with the context and
// error-boundary chains (spec §4.3, §4.4).
type SetupContext struct {
	inst *Instance
}

// Props exposes the reactive props proxy for this instance.
func (c *SetupContext) Props() *Props { return &Props{inst: c.inst} }

// OnMount registers fn to run once the component's rendered subtree has
// been inserted into a document-connected parent (spec §4.3 "OnMount").
func (c *SetupContext) OnMount(fn func()) {
	c.inst.mountCallbacks = append(c.inst.mountCallbacks, fn)
}

// OnCleanup registers fn to run when the instance is destroyed, in
// registration order (spec §4.3 "Cleanup"). Registration goes through
// this instance's reactivity.CleanupScope, the same disposal backbone
// DOM-level resources (event listeners, refs) use.
func (c *SetupContext) OnCleanup(fn func()) {
	c.inst.scope.RegisterDisposer(fn)
}

// Inject writes value into this instance's own context map under id,
// visible to this instance and its descendants (spec §4.4 "Provide").
func (c *SetupContext) Inject(id, value any) {
	c.inst.inject(id, value)
}

// GetContext looks up id by walking this instance's context map and then
// its ancestor chain (spec §4.4 "Lookup").
func (c *SetupContext) GetContext(id any) (any, bool) {
	return c.inst.getContext(id)
}

// CatchError registers handler as this instance's error boundary: any
// panic during this instance's own setup or render, or an uncaught error
// propagating up from a descendant's render, is recovered by calling
// handler and mounting the vdom.Node it returns in place of the failed
// subtree (spec §4.3 "Error boundaries").
func (c *SetupContext) CatchError(handler func(error) vdom.Node) {
	c.inst.errorHandler = handler
}
