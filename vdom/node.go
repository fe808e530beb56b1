// Package vdom implements the virtual-DOM diff/patch layer: tagged node
// variants, keyed children reconciliation with DOM-identity preservation,
// and attribute/style/class/event application (spec §3 "VDOM node", §4.5).
package vdom

// Node is the sealed interface implemented by every vdom node variant:
// Text, Element, Fragment, Component, Root.
type Node interface {
	isNode()
}

// Text is a plain text node.
type Text struct {
	Content string
}

func (Text) isNode() {}

// Props carries an Element's attributes, event handlers, style, class and
// ref, addressed by the conventions in §4.5.
type Props map[string]any

// EventHandler is the value placed under an "on<Type>" prop key.
type EventHandler func(Event)

// RefCallback receives the mounted DOM node on mount and nil on unmount.
type RefCallback func(any)

// Ref is either a RefCallback or a pointer-like holder with a settable
// Current field (spec §4.5 "ref").
type Ref struct {
	Callback RefCallback
	Current  *any
}

// Element is a tagged DOM element with props and ordered children.
type Element struct {
	Tag      string
	Props    Props
	Children []Node
	Key      any
}

func (*Element) isNode() {}

// Fragment mounts its children into the parent position without creating
// a container node of its own.
type Fragment struct {
	Children []Node
	Key      any
}

func (*Fragment) isNode() {}

// Component references a component definition by identifier, with props
// and an optional reconciliation key. ComponentType is implemented by the
// component package so this package never imports it (spec ties the
// reconciler to component instances without coupling their packages).
type Component struct {
	Type  ComponentType
	Props map[string]any
	Key   any
}

func (*Component) isNode() {}

// Root wraps a single child mounted into a host container.
type Root struct {
	Child Node
}

func (*Root) isNode() {}

// ComponentType produces a fresh ComponentInstance for each mount of a
// Component node at a new vdom position (spec §4.3 "created on first
// render of its vdom position").
type ComponentType interface {
	Instantiate(ctx InstanceContext) ComponentInstance
}

// InstanceContext is what the reconciler hands a freshly instantiated
// component: a reference to the nearest ancestor instance's context
// chain, opaque to this package. Initial props arrive separately through
// ComponentInstance.SetProps.
type InstanceContext struct {
	Parent any
}

// ComponentInstance is the lifecycle surface a component package
// implementation exposes to the reconciler.
type ComponentInstance interface {
	// SetProps delivers new props to an already-mounted instance (spec
	// §4.3 "Prop reception"). Returns whether a re-render is required.
	SetProps(props map[string]any) bool
	// Render produces the vdom subtree for this instance's current
	// props/state.
	Render() Node
	// Mounted is called once the rendered subtree has been inserted into
	// a document-connected parent, so registered mount callbacks and ref
	// callbacks fire in the right order.
	Mounted()
	// Destroy runs cleanup callbacks and disposes observers (spec §4.3
	// "Cleanup").
	Destroy()
	// Self exposes the underlying instance for parent-chain context
	// lookups; opaque to this package.
	Self() any
	// AttachRerender supplies the callback the instance must invoke
	// whenever an internally observed signal (not a prop) changes and
	// this component needs to re-render itself independently of parent
	// reconciliation (spec §4.3: "the observer's callback schedules a
	// re-render through the scheduler").
	AttachRerender(fn func())
}
