package reactivity

// queuedCallback is a unit of scheduled work carrying its own "queued"
// marker, which is what makes Queue idempotent within a single pass
// (spec §3 "Scheduler queues", §4.2 "Deduplication").
type queuedCallback struct {
	fn     func()
	queued bool
}

func (q *queuedCallback) run() {
	q.queued = false
	q.fn()
}

// syncFrame is one entry of the synchronous batch stack: an ordered,
// growable sequence of callbacks queued during that frame's flush.
type syncFrame struct {
	items []*queuedCallback
}

// MicrotaskScheduler abstracts the "schedule fn to run at the next
// microtask" primitive so the engine is testable with a manual tick
// (spec §9, "Microtask batching ... implement behind an injected
// scheduler interface").
type MicrotaskScheduler interface {
	Schedule(fn func())
}

type scheduler struct {
	syncStack      []*syncFrame
	async          []*queuedCallback
	asyncScheduled bool
	flushingAsync  bool
	ms             MicrotaskScheduler
}

var sched = &scheduler{ms: defaultMicrotaskScheduler()}

// SetMicrotaskScheduler overrides the microtask primitive used for async
// batching. Production code on js/wasm installs queueMicrotask; tests
// install a ManualScheduler and drive it explicitly with Tick().
func SetMicrotaskScheduler(ms MicrotaskScheduler) {
	sched.ms = ms
}

// Queue schedules qc for the current batch: the top sync frame if one is
// active, else the async queue (scheduling a microtask flush). A callback
// already queued in the current pass is not queued twice.
func Queue(qc *queuedCallback) {
	sched.queue(qc)
}

func (s *scheduler) queue(qc *queuedCallback) {
	if qc.queued {
		return
	}
	qc.queued = true
	if n := len(s.syncStack); n > 0 {
		frame := s.syncStack[n-1]
		frame.items = append(frame.items, qc)
		return
	}
	s.async = append(s.async, qc)
	if !s.flushingAsync {
		s.scheduleAsyncFlush()
	}
}

func (s *scheduler) scheduleAsyncFlush() {
	if s.asyncScheduled {
		return
	}
	s.asyncScheduled = true
	s.ms.Schedule(s.flushAsync)
}

// flushAsync drains the async queue from index 0 to its growing length —
// no length snapshot, so callbacks that enqueue more work during the
// flush are drained in this same microtask (spec §4.2).
func (s *scheduler) flushAsync() {
	s.asyncScheduled = false
	s.flushingAsync = true
	i := 0
	for i < len(s.async) {
		qc := s.async[i]
		i++
		if qc.queued {
			qc.run()
		}
	}
	s.async = s.async[:0]
	s.flushingAsync = false
}

// SyncBatch runs fn inside a fresh transactional frame, then drains that
// frame to a fixed point: callbacks queued during the drain (cascading
// updates) are themselves drained, until the frame is empty. If fn
// panics, the frame is popped without flushing — partial effects are not
// executed — and queued-but-undrained callbacks are released so they can
// be queued again by later batches.
func SyncBatch(fn func()) {
	frame := &syncFrame{}
	sched.syncStack = append(sched.syncStack, frame)

	defer func() {
		if r := recover(); r != nil {
			for _, qc := range frame.items {
				qc.queued = false
			}
			sched.popSyncFrame()
			panic(r)
		}
	}()

	fn()

	for len(frame.items) > 0 {
		batch := frame.items
		frame.items = nil
		for _, qc := range batch {
			if qc.queued {
				qc.run()
			}
		}
	}
	sched.popSyncFrame()
}

func (s *scheduler) popSyncFrame() {
	s.syncStack = s.syncStack[:len(s.syncStack)-1]
}
