// Package reactivity is the fine-grained reactivity engine underneath
// raskgo: signals, observers, derived values, reactive state proxies and
// the batch scheduler that ties them together.
//
// # Core types
//
// rawSignal is a bare observable token with a subscriber set:
//
//	sig := newRawSignal()
//	dispose := sig.subscribe(func() { /* ran on notify */ })
//	sig.notify()
//
// Observer is a reactive scope. While observing, any Signal read through
// the package-level tracking hook subscribes the observer:
//
//	obs := CreateObserver(func() { /* re-render, recompute, ... */ })
//	stop := obs.Observe()
//	_ = count.Get() // subscribes obs to count's signal
//	stop()
//
// Signal[T] is the ergonomic generic signal built on rawSignal+Observer:
//
//	count := CreateSignal(0)
//	double := CreateMemo(func() int { return count.Get() * 2 })
//	CreateEffect(func() { fmt.Println(count.Get()) })
//
// # Batching
//
//	SyncBatch(func() {
//	    count.Set(1)
//	    count.Set(2)
//	    count.Set(3)
//	}) // exactly one notification per observer, reading 3
//
// # Reactive state
//
//	state := CreateState(map[string]any{"count": 0})
//	state.Set("count", 1)
//
// or, for statically typed data, the reflection-backed Store:
//
//	store, setState := CreateStore(AppState{Count: 0})
//	setState("Count", 1)
package reactivity
