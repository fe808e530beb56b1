package reactivity

// Observer is the reactive scope described in spec §3/§4.1: while it is
// observing, reads of tracked signals subscribe it; when any of those
// signals fires, the observer's notify callback is scheduled through the
// batch scheduler, deduplicated so a given observer runs at most once per
// convergence pass.
type Observer struct {
	notify   func()
	subs     []func()
	cleanups []func()
	disposed bool
	qc       *queuedCallback
	// notified is set by the qc wrapper whenever notify actually runs,
	// and cleared at the start of Observe(). Component instances use this
	// to implement shouldComponentUpdate (spec §4.3).
	notified bool
}

// CreateObserver constructs an Observer whose notify callback is invoked
// whenever a signal read during its last Observe() window changes.
func CreateObserver(notify func()) *Observer {
	o := &Observer{notify: notify}
	o.qc = &queuedCallback{fn: o.runNotify}
	return o
}

func (o *Observer) runNotify() {
	if o.disposed {
		return
	}
	o.notified = true
	o.notify()
}

var observerStack []*Observer

// currentObserver returns the observer on top of the process-wide stack,
// or nil if none is active.
func currentObserver() *Observer {
	if len(observerStack) == 0 {
		return nil
	}
	return observerStack[len(observerStack)-1]
}

// subscribeSignal records a subscription to sig. The registered callback
// enqueues this observer's deduplicated notify callback rather than
// running notify synchronously, which is what makes the scheduler's
// "one notification per observer per batch" guarantee possible.
func (o *Observer) subscribeSignal(sig *rawSignal) {
	if o.disposed {
		return
	}
	dispose := sig.subscribe(func() {
		if o.disposed {
			return
		}
		Queue(o.qc)
	})
	o.subs = append(o.subs, dispose)
}

// Observe clears previous subscriptions and cleanups (so conditional
// dependencies stop tracking whichever branch wasn't taken this time),
// pushes this observer as the current observer, and returns a function
// that pops it back off. Every public entry point that calls Observe must
// eventually call the returned stop function, including on panic.
func (o *Observer) Observe() func() {
	o.runCleanups()
	o.unsubscribeAll()
	o.notified = false
	observerStack = append(observerStack, o)
	return func() {
		observerStack = observerStack[:len(observerStack)-1]
	}
}

func (o *Observer) unsubscribeAll() {
	for _, dispose := range o.subs {
		dispose()
	}
	o.subs = o.subs[:0]
}

func (o *Observer) runCleanups() {
	cleanups := o.cleanups
	o.cleanups = nil
	for _, c := range cleanups {
		safeCall(c)
	}
}

// Dispose detaches the observer from all current subscriptions, runs any
// pending cleanups, and marks it so its callback never fires again, even
// for work already queued in the scheduler.
func (o *Observer) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.runCleanups()
	o.unsubscribeAll()
}

// Notified reports whether this observer's notify callback has run since
// the last Observe() call. Component instances use this to implement
// shouldComponentUpdate (spec §4.3).
func (o *Observer) Notified() bool { return o.notified }

// trackRead subscribes the current observer (if any) to sig. Every Signal
// and reactive-proxy read path funnels through this.
func trackRead(sig *rawSignal) {
	if o := currentObserver(); o != nil {
		o.subscribeSignal(sig)
	}
}

// Effect is a disposable reactive computation created with CreateEffect.
type Effect interface {
	Dispose()
}

type effectHandle struct{ obs *Observer }

func (e *effectHandle) Dispose() { e.obs.Dispose() }

// CreateEffect runs fn immediately inside a fresh Observer scope, then
// re-runs it whenever a signal read during its last run changes. fn may
// call OnCleanup to register teardown that runs before each re-run and on
// final disposal.
func CreateEffect(fn func()) Effect {
	var obs *Observer
	obs = CreateObserver(func() { runObserved(obs, fn) })
	runObserved(obs, fn)
	return &effectHandle{obs: obs}
}

func runObserved(obs *Observer, fn func()) {
	stop := obs.Observe()
	defer stop()
	fn()
}
