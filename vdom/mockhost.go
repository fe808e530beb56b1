package vdom

// mockNode is the in-memory DOM node backing MockHost: enough of a tree
// structure to exercise keyed-reconciliation identity preservation and
// attribute/event bookkeeping without a browser.
type mockNode struct {
	isText     bool
	tag        string
	text       string
	attrs      map[string]string
	props      map[string]any
	listeners  map[string][]func(Event)
	parent     *mockNode
	children   []*mockNode
}

// MockHost is the default, build-tag-free Host implementation used by
// tests and any non-wasm embedding of the reconciler.
type MockHost struct{}

func NewMockHost() *MockHost { return &MockHost{} }

func asNode(n HNode) *mockNode {
	if n == nil {
		return nil
	}
	return n.(*mockNode)
}

func (h *MockHost) CreateElement(tag string) HNode {
	return &mockNode{tag: tag, attrs: map[string]string{}, props: map[string]any{}, listeners: map[string][]func(Event){}}
}

func (h *MockHost) CreateText(content string) HNode {
	return &mockNode{isText: true, text: content}
}

func (h *MockHost) SetTextContent(n HNode, content string) {
	asNode(n).text = content
}

func (h *MockHost) SetAttribute(n HNode, name, value string) {
	asNode(n).attrs[name] = value
}

func (h *MockHost) RemoveAttribute(n HNode, name string) {
	delete(asNode(n).attrs, name)
}

func (h *MockHost) SetProperty(n HNode, name string, value any) {
	asNode(n).props[name] = value
}

func (h *MockHost) AppendChild(parent, child HNode) {
	p, c := asNode(parent), asNode(child)
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	p.children = append(p.children, c)
	c.parent = p
}

func (h *MockHost) InsertBefore(parent, child, before HNode) {
	p, c := asNode(parent), asNode(child)
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	if before == nil {
		p.children = append(p.children, c)
		c.parent = p
		return
	}
	b := asNode(before)
	idx := p.indexOf(b)
	if idx < 0 {
		p.children = append(p.children, c)
	} else {
		p.children = append(p.children[:idx], append([]*mockNode{c}, p.children[idx:]...)...)
	}
	c.parent = p
}

func (h *MockHost) RemoveChild(parent, child HNode) {
	asNode(parent).removeChild(asNode(child))
}

func (h *MockHost) AddEventListener(n HNode, eventType string, handler func(Event)) func() {
	node := asNode(n)
	node.listeners[eventType] = append(node.listeners[eventType], handler)
	idx := len(node.listeners[eventType]) - 1
	return func() {
		list := node.listeners[eventType]
		if idx < len(list) {
			node.listeners[eventType] = append(list[:idx], list[idx+1:]...)
		}
	}
}

func (h *MockHost) Parent(n HNode) HNode {
	p := asNode(n).parent
	if p == nil {
		return nil
	}
	return p
}

func (h *MockHost) NextSibling(n HNode) HNode {
	node := asNode(n)
	if node.parent == nil {
		return nil
	}
	idx := node.parent.indexOf(node)
	if idx < 0 || idx+1 >= len(node.parent.children) {
		return nil
	}
	return node.parent.children[idx+1]
}

func (n *mockNode) indexOf(child *mockNode) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *mockNode) removeChild(child *mockNode) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
}

// dispatch synthesizes an event at n, invoking listeners registered for
// eventType in registration order — used by tests to exercise handlers
// without a real browser.
func (n *mockNode) dispatch(eventType string, ev Event) {
	for _, l := range n.listeners[eventType] {
		l(ev)
	}
}

// mockEvent is the Event implementation tests construct directly.
type mockEvent struct {
	typ     string
	target  HNode
	prevented bool
	stopped   bool
}

func NewMockEvent(typ string, target HNode) *mockEvent {
	return &mockEvent{typ: typ, target: target}
}

func (e *mockEvent) Type() string          { return e.typ }
func (e *mockEvent) Target() HNode         { return e.target }
func (e *mockEvent) PreventDefault()       { e.prevented = true }
func (e *mockEvent) StopPropagation()      { e.stopped = true }

// TextContent returns the concatenated text of n and its descendants,
// for assertions that don't want to walk mockNode internals directly.
func (h *MockHost) TextContent(n HNode) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if node.isText {
		return node.text
	}
	var s string
	for _, c := range node.children {
		s += h.TextContent(c)
	}
	return s
}

// Click synthesizes a "click" event at n, for tests exercising handlers
// wired up through onclick props.
func (h *MockHost) Click(n HNode) {
	asNode(n).dispatch("click", NewMockEvent("click", n))
}
