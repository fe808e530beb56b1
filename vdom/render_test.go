package vdom

import (
	"testing"

	"github.com/raskgo/raskgo/reactivity"
)

func TestRenderMountsAndReactsToSignalChanges(t *testing.T) {
	host := NewMockHost()
	container := host.CreateElement("div")

	count := reactivity.CreateSignal(0)
	unmount := Render(host, container, func() Node {
		return Text{Content: itoa(count.Get())}
	})

	if got := asNode(container).children[0].text; got != "0" {
		t.Fatalf("initial text = %q, want 0", got)
	}

	count.Set(1)
	if got := asNode(container).children[0].text; got != "1" {
		t.Fatalf("text after signal change = %q, want 1", got)
	}

	unmount()
	if len(asNode(container).children) != 0 {
		t.Fatalf("container still has children after unmount")
	}
}

func TestRenderStopsTrackingUnusedConditionalBranch(t *testing.T) {
	host := NewMockHost()
	container := host.CreateElement("div")

	useA := reactivity.CreateSignal(true)
	a := reactivity.CreateSignal("a")
	b := reactivity.CreateSignal("b")
	renders := 0

	Render(host, container, func() Node {
		renders++
		if useA.Get() {
			return Text{Content: a.Get()}
		}
		return Text{Content: b.Get()}
	})

	if renders != 1 {
		t.Fatalf("renders = %d, want 1", renders)
	}

	useA.Set(false)
	if renders != 2 {
		t.Fatalf("renders after branch switch = %d, want 2", renders)
	}

	a.Set("changed")
	if renders != 2 {
		t.Fatalf("renders after writing untracked branch = %d, want 2", renders)
	}

	b.Set("changed")
	if renders != 3 {
		t.Fatalf("renders after writing tracked branch = %d, want 3", renders)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
