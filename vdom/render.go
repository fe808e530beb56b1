package vdom

import "github.com/raskgo/raskgo/reactivity"

// Render mounts the tree build() produces into container on host, then
// re-renders reactively: build runs inside an Observer, so any signal it
// reads directly schedules a patch of the existing mounted tree the next
// time that signal fires, instead of tearing everything down (spec §2
// "Render entry point ... flushing is driven by the scheduler"). Signals
// read inside component render functions are tracked by each component's
// own render observer, which re-renders that component's subtree only.
func Render(host Host, container HNode, build func() Node) func() {
	var current *mounted
	var obs *reactivity.Observer

	run := func() Node {
		stop := obs.Observe()
		defer stop()
		return build()
	}

	obs = reactivity.CreateObserver(func() {
		current = Patch(host, container, current, run())
	})

	current = Mount(host, container, nil, run())

	return func() {
		obs.Dispose()
		Unmount(host, container, current)
	}
}
