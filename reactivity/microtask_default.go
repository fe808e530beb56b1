//go:build !js || !wasm

package reactivity

// immediateScheduler runs scheduled work synchronously. It is the default
// outside js/wasm (there is no browser microtask queue to hook into), and
// it keeps the scheduler usable for non-browser tooling. Tests that care
// about microtask-batching semantics install a ManualScheduler instead.
type immediateScheduler struct{}

func defaultMicrotaskScheduler() MicrotaskScheduler {
	return immediateScheduler{}
}

func (immediateScheduler) Schedule(fn func()) { fn() }
