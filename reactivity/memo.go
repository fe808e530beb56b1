package reactivity

// memoSignal is a single lazily-computed derived value: the building
// block behind CreateMemo and each entry of a Derived table (spec §3,
// "Derived entry").
type memoSignal[T any] struct {
	compute func() T
	dirty   bool
	value   T
	outer   *rawSignal
	inner   *Observer
}

// CreateMemo creates a derived, cached signal. The initial computation is
// deferred until first Get(); afterwards it only reruns lazily, on the
// next Get() after the inner observer's tracked dependencies fire (spec
// §4.1: "if dirty, reruns the compute function ... otherwise returns the
// cache").
func CreateMemo[T any](fn func() T) Signal[T] {
	m := &memoSignal[T]{compute: fn, dirty: true, outer: newRawSignal()}
	m.inner = CreateObserver(func() {
		m.dirty = true
		m.outer.notify()
	})
	return m
}

func (m *memoSignal[T]) Get() T {
	trackRead(m.outer)
	if m.dirty {
		m.refresh()
	}
	return m.value
}

func (m *memoSignal[T]) refresh() {
	stop := m.inner.Observe()
	m.value = m.compute()
	stop()
	m.dirty = false
}

// Set overrides the cached value directly without recomputation, notifying
// dependents if it changed. Most callers never call Set on a derived
// value; it exists so memoSignal satisfies Signal[T] for composition with
// code that only knows about the Signal interface.
func (m *memoSignal[T]) Set(v T) {
	if !m.dirty && valuesEqual(m.value, v) {
		return
	}
	m.value = v
	m.dirty = false
	m.outer.notify()
}
