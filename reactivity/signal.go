package reactivity

import "reflect"

// rawSignal is the primitive observable token the spec describes: a
// subscriber set plus notify(). It carries no value of its own; typed
// signals (baseSignal) and the reactive state proxy build on it.
//
// notify() iterates a snapshot of the current subscribers so callbacks
// added to the set during a notification pass are never invoked in that
// same pass.
type rawSignal struct {
	subs   map[int]func()
	nextID int
}

func newRawSignal() *rawSignal {
	return &rawSignal{subs: make(map[int]func())}
}

// subscribe registers cb and returns a dispose function. Disposal is O(1).
func (s *rawSignal) subscribe(cb func()) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = cb
	return func() { delete(s.subs, id) }
}

// notify invokes every current subscriber exactly once, in insertion order.
// Subscribers are keyed by a monotonically increasing id, so sorting the
// snapshot ids recovers insertion order without depending on map iteration.
func (s *rawSignal) notify() {
	if len(s.subs) == 0 {
		return
	}
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	for _, id := range ids {
		if cb, ok := s.subs[id]; ok {
			cb()
		}
	}
}

// Signal is a typed observable value, the ergonomic surface most callers
// use directly (see spec §6's createState building block).
type Signal[T any] interface {
	// Get returns the current value. If called while an Observer is
	// active, that observer is subscribed to this signal.
	Get() T
	// Set updates the value. A no-op (no notification) if the new value
	// equals the old one under valuesEqual.
	Set(value T)
}

// baseSignal is the default Signal[T] implementation: a value cell backed
// by a rawSignal.
type baseSignal[T any] struct {
	value T
	sig   *rawSignal
}

// CreateSignal creates a new reactive value cell.
func CreateSignal[T any](initial T) Signal[T] {
	return &baseSignal[T]{value: initial, sig: newRawSignal()}
}

func (s *baseSignal[T]) Get() T {
	trackRead(s.sig)
	return s.value
}

func (s *baseSignal[T]) Set(v T) {
	if valuesEqual(s.value, v) {
		return
	}
	s.value = v
	s.sig.notify()
}

// valuesEqual reports whether two values of the same underlying type are
// identical under the spec's "==="-style equality: reference equality for
// pointers and other comparable reference kinds, deep equality otherwise.
func valuesEqual(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() && av.Kind() == bv.Kind() {
		switch av.Kind() {
		case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
			return a == b
		}
	}
	return reflect.DeepEqual(a, b)
}
