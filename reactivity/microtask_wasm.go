//go:build js && wasm

package reactivity

import "syscall/js"

// jsMicrotaskScheduler schedules flushes via the browser's queueMicrotask,
// giving the async batch queue true microtask semantics in production.
type jsMicrotaskScheduler struct{}

func defaultMicrotaskScheduler() MicrotaskScheduler {
	return jsMicrotaskScheduler{}
}

func (jsMicrotaskScheduler) Schedule(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("queueMicrotask", cb)
}
