package reactivity

import "github.com/ozanturksever/logutil"

// OnCleanup registers fn to run before the current observer re-executes
// and when it is disposed (spec §4.1, §9 open question: cleanups may not
// register further cleanups — post-cleanup is terminal). Called outside
// an observer scope, it is a no-op.
func OnCleanup(fn func()) {
	o := currentObserver()
	if o == nil || o.disposed {
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// safeCall runs fn, recovering and logging any panic rather than letting
// it escape. Cleanup and effect-dispose errors must never propagate out —
// doing so would leave sibling cleanups unrun and leak resources (spec §7
// kind 3).
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Logf("raskgo: cleanup panic recovered: %v\n", r)
		}
	}()
	fn()
}
