package component

import (
	"fmt"
	"testing"

	"github.com/raskgo/raskgo/reactivity"
	"github.com/raskgo/raskgo/vdom"
)

// Counter is a minimal component used to exercise the vdom/component
// boundary end to end: mount, prop-driven patch, self-triggered
// re-render, and unmount.
var Counter = &Definition{
	Name: "Counter",
	Setup: func(ctx *SetupContext) RenderFunc {
		clicks := reactivity.CreateSignal(0)
		return func() vdom.Node {
			label := ctx.Props().Get("label").(string)
			return &vdom.Element{Tag: "button",
				Props: vdom.Props{
					"onclick": vdom.EventHandler(func(vdom.Event) { clicks.Set(clicks.Get() + 1) }),
				},
				Children: []vdom.Node{vdom.Text{Content: fmt.Sprintf("%s: %d", label, clicks.Get())}},
			}
		}
	},
}

func TestComponentMountsAndPatchesThroughVDOM(t *testing.T) {
	host := vdom.NewMockHost()
	root := host.CreateElement("div")

	m := vdom.Mount(host, root, nil, &vdom.Component{Type: Counter, Props: map[string]any{"label": "clicks"}})

	if got := host.TextContent(vdom.HostNode(m)); got != "clicks: 0" {
		t.Fatalf("initial render = %q, want %q", got, "clicks: 0")
	}

	m = vdom.Patch(host, root, m, &vdom.Component{Type: Counter, Props: map[string]any{"label": "count"}})
	if got := host.TextContent(vdom.HostNode(m)); got != "count: 0" {
		t.Fatalf("render after prop patch = %q, want %q", got, "count: 0")
	}

	host.Click(vdom.HostNode(m))
	if got := host.TextContent(vdom.HostNode(m)); got != "count: 1" {
		t.Fatalf("render after self-triggered re-render = %q, want %q", got, "count: 1")
	}

	vdom.Unmount(host, root, m)
}
