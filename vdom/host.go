package vdom

// HNode is an opaque handle to a real host-DOM node. The reconciler never
// inspects it directly; it only ever passes handles back into Host calls.
type HNode any

// Event is the minimal cross-host event surface the reconciler's caller
// needs; real hosts wrap the platform event behind this.
type Event interface {
	Type() string
	Target() HNode
	PreventDefault()
	StopPropagation()
}

// Host abstracts every DOM primitive the reconciler needs, so the same
// Mount/Patch code runs against a real browser DOM (js/wasm, backed by
// honnef.co/go/js/dom/v2) and against an in-memory mock used in tests
// and outside a browser (spec §9 open question: make the host pluggable
// so reconciliation logic is testable headless).
type Host interface {
	CreateElement(tag string) HNode
	CreateText(content string) HNode
	SetTextContent(n HNode, content string)
	SetAttribute(n HNode, name, value string)
	RemoveAttribute(n HNode, name string)
	SetProperty(n HNode, name string, value any)
	AppendChild(parent, child HNode)
	InsertBefore(parent, child, before HNode)
	RemoveChild(parent, child HNode)
	AddEventListener(n HNode, eventType string, handler func(Event)) func()
	Parent(n HNode) HNode
	NextSibling(n HNode) HNode
}
