package vdom

import "testing"

func TestClassWinsOverClassNameOnMount(t *testing.T) {
	host := NewMockHost()
	root := host.CreateElement("div")

	el := &Element{Tag: "span", Props: Props{"class": "from-class", "className": "from-classname"}}
	m := Mount(host, root, nil, el)

	if got := asNode(m.host).attrs["class"]; got != "from-class" {
		t.Fatalf("class attribute = %q, want from-class", got)
	}
}

func TestClassWinsOverClassNameOnPatch(t *testing.T) {
	host := NewMockHost()
	root := host.CreateElement("div")

	m := Mount(host, root, nil, &Element{Tag: "span", Props: Props{"className": "initial"}})
	if got := asNode(m.host).attrs["class"]; got != "initial" {
		t.Fatalf("class attribute = %q, want initial", got)
	}

	next := &Element{Tag: "span", Props: Props{"class": "from-class", "className": "from-classname"}}
	m = Patch(host, root, m, next)

	if got := asNode(m.host).attrs["class"]; got != "from-class" {
		t.Fatalf("class attribute after patch = %q, want from-class", got)
	}
}
