package reactivity

import "reflect"

// Proxy is the reactive state proxy described in spec §3/§4.1: it wraps a
// plain `map[string]any` (object) or `[]any` (array), lazily allocating a
// Signal per keyed property. Reading a key inside an Observer subscribes
// that observer; writing notifies the key's signal only if it exists and
// the value actually changed (array `length` always counts as changed).
type Proxy struct {
	target  any // map[string]any or []any
	signals map[any]*rawSignal
	lenSig  *rawSignal
}

// CreateState wraps obj — a map[string]any or []any — as a reactive
// proxy. Wrapping the same underlying map/slice twice returns the same
// *Proxy (spec §8: "reading the same nested object twice returns
// referentially equal proxies").
func CreateState(obj any) *Proxy {
	p, ok := wrapValue(obj).(*Proxy)
	if !ok {
		panic("reactivity: CreateState expects a map[string]any or []any")
	}
	return p
}

func newProxy(target any) *Proxy {
	return &Proxy{target: target, signals: make(map[any]*rawSignal)}
}

// wrapValue is the read-path policy from spec §4.1: symbols/functions (Go
// has no Symbol; funcs fall through to "returned unwrapped" via the
// default case) and opaque built-ins (structs such as time.Time,
// pointers) pass through unchanged; plain maps/slices are returned as
// their (identity-cached) Proxy.
func wrapValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if t == nil {
			return t
		}
		id := mapIdentity(t)
		return getOrCreateProxy(id, func() *Proxy { return newProxy(t) })
	case []any:
		if len(t) == 0 {
			// Zero-length slices share backing storage (runtime.zerobase),
			// so they can't be used as an identity-cache key — still wrap
			// them, just skip the cache lookup.
			return newProxy(t)
		}
		id := sliceIdentity(t)
		return getOrCreateProxy(id, func() *Proxy { return newProxy(t) })
	default:
		return v
	}
}

func (p *Proxy) signalFor(key any) *rawSignal {
	if sig, ok := p.signals[key]; ok {
		return sig
	}
	sig := newRawSignal()
	p.signals[key] = sig
	return sig
}

func (p *Proxy) lengthSignal() *rawSignal {
	if p.lenSig == nil {
		p.lenSig = newRawSignal()
	}
	return p.lenSig
}

// Get reads a property. key is a string for object proxies ("length" is
// reserved to read array length) and an int for array proxies.
func (p *Proxy) Get(key any) any {
	switch t := p.target.(type) {
	case map[string]any:
		k := key.(string)
		trackRead(p.signalFor(k))
		return wrapValue(t[k])
	case []any:
		if k, ok := key.(string); ok && k == "length" {
			trackRead(p.lengthSignal())
			return len(t)
		}
		idx := key.(int)
		trackRead(p.signalFor(idx))
		if idx < 0 || idx >= len(t) {
			return nil
		}
		return wrapValue(t[idx])
	}
	return nil
}

// Has reports whether an object key is present, without reading its value.
func (p *Proxy) Has(key string) bool {
	t, ok := p.target.(map[string]any)
	if !ok {
		return false
	}
	_, exists := t[key]
	return exists
}

// Len returns the current array length without tracking — use Get("length")
// to read reactively.
func (p *Proxy) Len() int {
	t, ok := p.target.([]any)
	if !ok {
		return 0
	}
	return len(t)
}

// Set writes a property. For object proxies, changed is computed by
// !valuesEqual(old, new); for array proxies key must be an int index, and
// changed is computed the same way. Array length is written with
// SetLength, which always notifies (spec §4.1 "Writes").
func (p *Proxy) Set(key any, value any) {
	switch t := p.target.(type) {
	case map[string]any:
		k := key.(string)
		old, existed := t[k]
		changed := !existed || !valuesEqual(old, value)
		t[k] = value
		if changed {
			if sig, ok := p.signals[k]; ok {
				sig.notify()
			}
		}
	case []any:
		idx := key.(int)
		var old any
		if idx >= 0 && idx < len(t) {
			old = t[idx]
		}
		changed := idx >= len(t) || !valuesEqual(old, value)
		for idx >= len(t) {
			t = append(t, nil)
		}
		t[idx] = value
		p.target = t
		if changed {
			if sig, ok := p.signals[idx]; ok {
				sig.notify()
			}
		}
	}
}

// Delete removes an object key, notifying its signal (if any) and
// dropping it.
func (p *Proxy) Delete(key string) {
	t, ok := p.target.(map[string]any)
	if !ok {
		return
	}
	if _, existed := t[key]; !existed {
		return
	}
	delete(t, key)
	if sig, ok := p.signals[key]; ok {
		sig.notify()
		delete(p.signals, key)
	}
}

// Assign shallow-copies updates onto an object proxy under a single
// SyncBatch, so observers that read several of the affected keys still
// see exactly one notification (spec §4.1 "assignState").
func (p *Proxy) Assign(updates map[string]any) {
	SyncBatch(func() {
		for k, v := range updates {
			p.Set(k, v)
		}
	})
}

func (p *Proxy) notifyIndexSignalsFrom(from int) {
	for k, sig := range p.signals {
		if idx, ok := k.(int); ok && idx >= from {
			sig.notify()
		}
	}
}

// Push appends to an array proxy.
func (p *Proxy) Push(v any) {
	t := p.target.([]any)
	p.target = append(t, v)
	p.lengthSignal().notify()
}

// Pop removes and returns the last element of an array proxy.
func (p *Proxy) Pop() any {
	t := p.target.([]any)
	if len(t) == 0 {
		return nil
	}
	last := len(t) - 1
	v := t[last]
	p.target = t[:last]
	if sig, ok := p.signals[last]; ok {
		sig.notify()
		delete(p.signals, last)
	}
	p.lengthSignal().notify()
	return v
}

// Shift removes and returns the first element of an array proxy.
func (p *Proxy) Shift() any {
	t := p.target.([]any)
	if len(t) == 0 {
		return nil
	}
	v := t[0]
	rest := make([]any, len(t)-1)
	copy(rest, t[1:])
	p.target = rest
	p.notifyIndexSignalsFrom(0)
	p.lengthSignal().notify()
	return v
}

// Unshift prepends v to an array proxy.
func (p *Proxy) Unshift(v any) {
	t := p.target.([]any)
	next := make([]any, 0, len(t)+1)
	next = append(next, v)
	next = append(next, t...)
	p.target = next
	p.notifyIndexSignalsFrom(0)
	p.lengthSignal().notify()
}

// Splice removes deleteCount elements starting at start and inserts
// insert in their place, returning the removed elements.
func (p *Proxy) Splice(start, deleteCount int, insert ...any) []any {
	t := p.target.([]any)
	if start < 0 {
		start = 0
	}
	if start > len(t) {
		start = len(t)
	}
	end := start + deleteCount
	if end > len(t) {
		end = len(t)
	}
	removed := append([]any(nil), t[start:end]...)
	next := append([]any(nil), t[:start]...)
	next = append(next, insert...)
	next = append(next, t[end:]...)
	p.target = next
	p.notifyIndexSignalsFrom(start)
	p.lengthSignal().notify()
	return removed
}

// SetLength truncates or zero-extends an array proxy; always a change
// notification, per spec's array `length`-write exception.
func (p *Proxy) SetLength(n int) {
	t := p.target.([]any)
	old := len(t)
	if n < old {
		t = t[:n]
		for idx, sig := range p.signals {
			if i, ok := idx.(int); ok && i >= n {
				sig.notify()
				delete(p.signals, idx)
			}
		}
	} else {
		for len(t) < n {
			t = append(t, nil)
		}
	}
	p.target = t
	p.lengthSignal().notify()
}

// underlyingKind reports whether target is a map-shaped or slice-shaped
// proxy, for callers that need to branch without a type switch.
func (p *Proxy) underlyingKind() reflect.Kind {
	return reflect.ValueOf(p.target).Kind()
}
