package component

import (
	"fmt"

	"github.com/raskgo/raskgo/reactivity"
	"github.com/raskgo/raskgo/vdom"
)

// Instance is the live state behind one mounted Component vdom node: its
// received props, its lazily-run setup, the render observer driving
// self-triggered re-renders, and the mount/cleanup/context bookkeeping
// setup registered (spec §4.3 "Component instance").
type Instance struct {
	def     *Definition
	props   map[string]any
	signals map[string]reactivity.Signal[int]

	renderFn       RenderFunc
	renderObserver *reactivity.Observer
	rerender       func()
	isReconciling  bool
	setupRan       bool

	mountCallbacks []func()
	scope          *reactivity.CleanupScope
	contextMap     map[any]any

	parent       *Instance
	errorHandler func(error) vdom.Node
}

func newInstance(def *Definition, props map[string]any, parent *Instance) *Instance {
	var parentScope *reactivity.CleanupScope
	if parent != nil {
		parentScope = parent.scope
	}
	return &Instance{
		def:        def,
		props:      props,
		signals:    make(map[string]reactivity.Signal[int]),
		contextMap: make(map[any]any),
		parent:     parent,
		scope:      reactivity.NewCleanupScope(parentScope),
	}
}

// signalFor lazily allocates the per-key version signal Props.Get
// subscribes to (spec §4.3 "Reactive props proxy").
func (inst *Instance) signalFor(key string) reactivity.Signal[int] {
	if sig, ok := inst.signals[key]; ok {
		return sig
	}
	sig := reactivity.CreateSignal(0)
	inst.signals[key] = sig
	return sig
}

// SetProps delivers newProps, bumping only the version signals of keys
// whose value actually changed, batched as one transaction so observers
// depending on several changed props re-render once (spec §4.3 "Prop
// reception").
func (inst *Instance) SetProps(newProps map[string]any) bool {
	if !inst.setupRan {
		inst.props = newProps
		return false
	}

	old := inst.props
	inst.props = newProps
	inst.isReconciling = true
	reactivity.SyncBatch(func() {
		for key, sig := range inst.signals {
			if !valuesEqual(old[key], newProps[key]) {
				sig.Set(sig.Get() + 1)
			}
		}
	})
	inst.isReconciling = false
	return inst.renderObserver.Notified()
}

// runSetup runs the component's Setup function exactly once, capturing
// the render closure it returns and wiring the observer that drives
// self-triggered re-renders (spec §4.3 "Setup runs once").
func (inst *Instance) runSetup() {
	if inst.setupRan {
		return
	}
	inst.setupRan = true

	inst.renderObserver = reactivity.CreateObserver(func() {
		if inst.isReconciling {
			return
		}
		if inst.rerender != nil {
			inst.rerender()
		}
	})

	ctx := &SetupContext{inst: inst}
	render := inst.def.Setup(ctx)
	if render == nil {
		render = func() vdom.Node { return vdom.Text{} }
	}
	inst.renderFn = render
}

// Render produces the current vdom subtree, pushing this instance onto
// the owner stack so components created during this render inherit its
// context/error-boundary chain (spec §4.4), and recovers a panicking
// setup or render through the nearest error handler (spec §4.3
// "Error boundaries").
func (inst *Instance) Render() (result vdom.Node) {
	vdom.PushOwner(inst)
	defer vdom.PopOwner()

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = &renderPanic{value: r}
			}
			result = inst.dispatchError(err)
		}
	}()

	inst.runSetup()

	stop := inst.renderObserver.Observe()
	defer stop()
	return inst.renderFn()
}

// Mounted runs registered mount callbacks in registration order (spec
// §4.3 "OnMount").
func (inst *Instance) Mounted() {
	for _, fn := range inst.mountCallbacks {
		fn()
	}
}

// Destroy disposes this instance's cleanup scope — running every
// registered cleanup in registration order, depth-first through any
// nested child-instance scopes — and disposes the render observer (spec
// §4.3 "Cleanup"). A panicking cleanup is recovered and logged by
// CleanupScope.Dispose, never propagated — subsequent cleanups still run
// (spec §7 kind 3).
func (inst *Instance) Destroy() {
	inst.scope.Dispose()
	if inst.renderObserver != nil {
		inst.renderObserver.Dispose()
	}
}

// Self returns the instance itself for parent-chain context lookups.
func (inst *Instance) Self() any { return inst }

// AttachRerender stores the reconciler-supplied callback this instance
// invokes when an internally observed signal changes outside of prop
// reception (spec §4.3 "self re-render").
func (inst *Instance) AttachRerender(fn func()) {
	inst.rerender = fn
}

// dispatchError walks the parent chain to the nearest registered error
// handler, re-panicking if none exists (spec §4.3 "uncaught errors
// propagate to the nearest ancestor boundary, or crash").
func (inst *Instance) dispatchError(err error) vdom.Node {
	for cur := inst; cur != nil; cur = cur.parent {
		if cur.errorHandler != nil {
			return cur.errorHandler(err)
		}
	}
	panic(err)
}

type renderPanic struct{ value any }

func (r *renderPanic) Error() string {
	if e, ok := r.value.(error); ok {
		return e.Error()
	}
	return fmt.Sprintf("component render panic: %v", r.value)
}
