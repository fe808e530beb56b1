package reactivity

import "testing"

// Outside a SyncBatch, signal writes land on the async queue and flush
// through the installed MicrotaskScheduler. Swapping in a ManualScheduler
// lets this test observe the "queued but not yet flushed" state directly
// instead of relying on the default scheduler's immediate (non-wasm) or
// queueMicrotask (wasm) timing (spec §8 "Async writes coalesce within a
// single microtask").
func TestManualSchedulerCoalescesAsyncWritesUntilTick(t *testing.T) {
	prev := CurrentMicrotaskScheduler()
	ms := &ManualScheduler{}
	SetMicrotaskScheduler(ms)
	defer SetMicrotaskScheduler(prev)

	count := CreateSignal(0)
	runs := 0
	obs := CreateObserver(func() { runs++ })
	stop := obs.Observe()
	count.Get()
	stop()

	count.Set(1)
	count.Set(2)
	count.Set(3)

	if runs != 0 {
		t.Fatalf("runs = %d before Tick, want 0 (flush not yet run)", runs)
	}
	if !ms.Pending() {
		t.Fatalf("expected a pending flush queued before Tick")
	}

	ms.Tick()

	if runs != 1 {
		t.Fatalf("runs after Tick = %d, want 1 (three writes coalesce into one flush)", runs)
	}
	if ms.Pending() {
		t.Fatalf("expected no pending flush after Tick")
	}
}

// A ManualScheduler lets a test assert that cascading async writes
// (queued by a flush that is itself running) drain within the same Tick,
// mirroring a single microtask checkpoint rather than requiring a second
// explicit Tick call.
func TestManualSchedulerDrainsCascadingWritesInOneTick(t *testing.T) {
	prev := CurrentMicrotaskScheduler()
	ms := &ManualScheduler{}
	SetMicrotaskScheduler(ms)
	defer SetMicrotaskScheduler(prev)

	a := CreateSignal(0)
	b := CreateSignal(0)
	bRuns := 0

	var obsA *Observer
	obsA = CreateObserver(func() {
		stop := obsA.Observe()
		b.Set(a.Get() * 10)
		stop()
	})
	stopA := obsA.Observe()
	_ = a.Get()
	stopA()

	obsB := CreateObserver(func() { bRuns++ })
	stopB := obsB.Observe()
	_ = b.Get()
	stopB()

	a.Set(1)
	ms.Tick()

	if bRuns != 1 {
		t.Fatalf("bRuns = %d, want 1 (b's notification from a's cascading write drained in the same Tick)", bRuns)
	}
	if b.Get() != 10 {
		t.Fatalf("b = %d, want 10", b.Get())
	}
}

// A write inside a nested SyncBatch that targets the same observer as an
// outer write must still produce exactly one notification: the "already
// queued" marker is observer-scoped, not frame-scoped, so nesting batches
// cannot duplicate a pending notification (spec §8 "Nested syncBatch is
// idempotent with respect to deduplication").
func TestNestedSyncBatchDedupesObserverRuns(t *testing.T) {
	count := CreateSignal(0)
	runs := 0
	obs := CreateObserver(func() { runs++ })
	stop := obs.Observe()
	count.Get()
	stop()

	SyncBatch(func() {
		count.Set(1)
		SyncBatch(func() {
			count.Set(2)
			count.Set(3)
		})
		count.Set(4)
	})

	if runs != 1 {
		t.Fatalf("runs = %d, want 1 (nested SyncBatch must not duplicate the notification)", runs)
	}
}
