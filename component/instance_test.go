package component

import (
	"fmt"
	"testing"

	"github.com/raskgo/raskgo/reactivity"
	"github.com/raskgo/raskgo/vdom"
)

func textNode(s string) vdom.Node { return vdom.Text{Content: s} }

func TestSetupRunsExactlyOnce(t *testing.T) {
	runs := 0
	def := &Definition{Name: "X", Setup: func(ctx *SetupContext) RenderFunc {
		runs++
		return func() vdom.Node { return textNode("x") }
	}}

	inst := def.Instantiate(vdom.InstanceContext{})
	inst.SetProps(nil)
	inst.Render()
	inst.Render()

	if runs != 1 {
		t.Fatalf("setup ran %d times, want 1", runs)
	}
}

func TestRenderRerunsOnlyOnTrackedPropChange(t *testing.T) {
	var lastRendered string
	def := &Definition{Name: "X", Setup: func(ctx *SetupContext) RenderFunc {
		return func() vdom.Node {
			lastRendered = ctx.Props().Get("label").(string)
			return textNode(lastRendered)
		}
	}}

	inst := def.Instantiate(vdom.InstanceContext{})
	inst.SetProps(map[string]any{"label": "a", "unrelated": 1})
	inst.Render()
	if lastRendered != "a" {
		t.Fatalf("lastRendered = %q, want a", lastRendered)
	}

	changed := inst.SetProps(map[string]any{"label": "a", "unrelated": 2})
	if changed {
		t.Fatalf("SetProps reported a re-render for an unread prop changing")
	}

	changed = inst.SetProps(map[string]any{"label": "b", "unrelated": 2})
	if !changed {
		t.Fatalf("SetProps did not report a re-render for a tracked prop changing")
	}
	inst.Render()
	if lastRendered != "b" {
		t.Fatalf("lastRendered = %q, want b", lastRendered)
	}
}

func TestSelfTriggeredRerenderViaAttachRerender(t *testing.T) {
	var count reactivity.Signal[int]
	def := &Definition{Name: "X", Setup: func(ctx *SetupContext) RenderFunc {
		count = reactivity.CreateSignal(0)
		return func() vdom.Node { return textNode(fmt.Sprintf("%d", count.Get())) }
	}}

	inst := def.Instantiate(vdom.InstanceContext{})
	inst.SetProps(nil)
	inst.Render()

	rerenders := 0
	inst.(*Instance).AttachRerender(func() { rerenders++ })

	count.Set(1)
	if rerenders != 1 {
		t.Fatalf("rerenders = %d, want 1", rerenders)
	}
}

func TestMountCleanupCallbackOrdering(t *testing.T) {
	var order []string
	def := &Definition{Name: "X", Setup: func(ctx *SetupContext) RenderFunc {
		ctx.OnMount(func() { order = append(order, "mount1") })
		ctx.OnMount(func() { order = append(order, "mount2") })
		ctx.OnCleanup(func() { order = append(order, "cleanup1") })
		ctx.OnCleanup(func() { order = append(order, "cleanup2") })
		return func() vdom.Node { return textNode("x") }
	}}

	inst := def.Instantiate(vdom.InstanceContext{})
	inst.SetProps(nil)
	inst.Render()
	inst.Mounted()
	inst.Destroy()

	want := []string{"mount1", "mount2", "cleanup1", "cleanup2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestContextInheritanceAcrossNestedInstances(t *testing.T) {
	type ctxKey struct{}

	parentDef := &Definition{Name: "Parent", Setup: func(ctx *SetupContext) RenderFunc {
		ctx.Inject(ctxKey{}, "from-parent")
		return func() vdom.Node { return textNode("parent") }
	}}

	parent := parentDef.Instantiate(vdom.InstanceContext{}).(*Instance)
	parent.SetProps(nil)
	parent.Render()

	childDef := &Definition{Name: "Child", Setup: func(ctx *SetupContext) RenderFunc {
		return func() vdom.Node {
			v, ok := ctx.GetContext(ctxKey{})
			if !ok {
				t.Fatalf("child did not see parent's injected context")
			}
			return textNode(v.(string))
		}
	}}

	child := childDef.Instantiate(vdom.InstanceContext{Parent: parent}).(*Instance)
	child.SetProps(nil)
	if got := child.Render(); got != (vdom.Text{Content: "from-parent"}) {
		t.Fatalf("child render = %v, want text from-parent", got)
	}
}

func TestErrorBoundaryCatchesRenderPanic(t *testing.T) {
	parentDef := &Definition{Name: "Boundary", Setup: func(ctx *SetupContext) RenderFunc {
		ctx.CatchError(func(err error) vdom.Node {
			return textNode("recovered: " + err.Error())
		})
		return func() vdom.Node { return textNode("parent") }
	}}
	parent := parentDef.Instantiate(vdom.InstanceContext{}).(*Instance)
	parent.SetProps(nil)
	parent.Render()

	childDef := &Definition{Name: "Faulty", Setup: func(ctx *SetupContext) RenderFunc {
		return func() vdom.Node { panic("boom") }
	}}
	child := childDef.Instantiate(vdom.InstanceContext{Parent: parent}).(*Instance)
	child.SetProps(nil)

	result := child.Render()
	text, ok := result.(vdom.Text)
	if !ok || text.Content != "recovered: component render panic: boom" {
		t.Fatalf("result = %#v, want recovered error text", result)
	}
}

func TestPanickingCleanupDoesNotAbortRemainingCleanups(t *testing.T) {
	var ran []string
	def := &Definition{Name: "X", Setup: func(ctx *SetupContext) RenderFunc {
		ctx.OnCleanup(func() { ran = append(ran, "first") })
		ctx.OnCleanup(func() { panic("cleanup boom") })
		ctx.OnCleanup(func() { ran = append(ran, "third") })
		return func() vdom.Node { return textNode("x") }
	}}

	inst := def.Instantiate(vdom.InstanceContext{})
	inst.SetProps(nil)
	inst.Render()

	inst.Destroy()

	want := []string{"first", "third"}
	if len(ran) != len(want) {
		t.Fatalf("ran = %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Fatalf("ran = %v, want %v", ran, want)
		}
	}
}

func TestUncaughtErrorPanicsWithoutBoundary(t *testing.T) {
	def := &Definition{Name: "Faulty", Setup: func(ctx *SetupContext) RenderFunc {
		return func() vdom.Node { panic("boom") }
	}}
	inst := def.Instantiate(vdom.InstanceContext{}).(*Instance)
	inst.SetProps(nil)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected render to panic when no error boundary is registered")
		}
	}()
	inst.Render()
}
