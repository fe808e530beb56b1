//go:build js && wasm

package vdom

import (
	"syscall/js"

	domv2 "honnef.co/go/js/dom/v2"
)

// BrowserHost is the Host implementation backing real mounts: it wraps
// honnef.co/go/js/dom/v2 nodes as HNode handles the same way the reconciler
// treats any other host, so Mount/Patch/reconcileKeyed never special-case
// wasm.
type BrowserHost struct {
	doc domv2.Document
}

// NewBrowserHost builds a Host bound to the current window's document.
func NewBrowserHost() *BrowserHost {
	return &BrowserHost{doc: domv2.GetWindow().Document()}
}

func (h *BrowserHost) CreateElement(tag string) HNode {
	return h.doc.CreateElement(tag)
}

func (h *BrowserHost) CreateText(content string) HNode {
	return h.doc.CreateTextNode(content)
}

func (h *BrowserHost) SetTextContent(n HNode, content string) {
	n.(domv2.Node).SetTextContent(content)
}

func (h *BrowserHost) SetAttribute(n HNode, name, value string) {
	n.(domv2.Element).SetAttribute(name, value)
}

func (h *BrowserHost) RemoveAttribute(n HNode, name string) {
	n.(domv2.Element).RemoveAttribute(name)
}

func (h *BrowserHost) SetProperty(n HNode, name string, value any) {
	n.(domv2.Element).Underlying().Set(name, value)
}

func (h *BrowserHost) AppendChild(parent, child HNode) {
	parent.(domv2.Node).AppendChild(child.(domv2.Node))
}

func (h *BrowserHost) InsertBefore(parent, child, before HNode) {
	if before == nil {
		parent.(domv2.Node).AppendChild(child.(domv2.Node))
		return
	}
	parent.(domv2.Node).InsertBefore(child.(domv2.Node), before.(domv2.Node))
}

func (h *BrowserHost) RemoveChild(parent, child HNode) {
	parent.(domv2.Node).RemoveChild(child.(domv2.Node))
}

func (h *BrowserHost) AddEventListener(n HNode, eventType string, handler func(Event)) func() {
	underlying := n.(domv2.Element).Underlying()
	jsFunc := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(wrapEvent(args[0]))
		}
		return nil
	})
	underlying.Call("addEventListener", eventType, jsFunc)
	return func() {
		underlying.Call("removeEventListener", eventType, jsFunc)
		jsFunc.Release()
	}
}

func (h *BrowserHost) Parent(n HNode) HNode {
	p := n.(domv2.Node).ParentNode()
	if p == nil {
		return nil
	}
	return p
}

func (h *BrowserHost) NextSibling(n HNode) HNode {
	s := n.(domv2.Node).NextSibling()
	if s == nil {
		return nil
	}
	return s
}

// browserEvent adapts a raw js.Value DOM event to this package's Event.
type browserEvent struct{ v js.Value }

func wrapEvent(v js.Value) Event { return &browserEvent{v: v} }

func (e *browserEvent) Type() string     { return e.v.Get("type").String() }
func (e *browserEvent) Target() HNode    { return domv2.WrapEvent(e.v).Target() }
func (e *browserEvent) PreventDefault()  { e.v.Call("preventDefault") }
func (e *browserEvent) StopPropagation() { e.v.Call("stopPropagation") }
