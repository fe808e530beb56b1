package reactivity

import "testing"

func TestCreateStateObjectGetSet(t *testing.T) {
	p := CreateState(map[string]any{"count": 1})

	runs := 0
	var seen int
	_ = CreateEffect(func() {
		seen = p.Get("count").(int)
		runs++
	})
	if runs != 1 || seen != 1 {
		t.Fatalf("initial runs=%d seen=%d, want 1,1", runs, seen)
	}

	p.Set("count", 2)
	if runs != 2 || seen != 2 {
		t.Fatalf("after set runs=%d seen=%d, want 2,2", runs, seen)
	}

	// Setting the same value must not notify.
	p.Set("count", 2)
	if runs != 2 {
		t.Fatalf("runs after same-value set = %d, want 2", runs)
	}
}

func TestCreateStateUnrelatedKeyDoesNotNotify(t *testing.T) {
	p := CreateState(map[string]any{"a": 1, "b": 10})

	runs := 0
	_ = CreateEffect(func() {
		_ = p.Get("a")
		runs++
	})
	p.Set("b", 20)
	if runs != 1 {
		t.Fatalf("runs after unrelated key set = %d, want 1", runs)
	}
}

func TestCreateStateWrappingSameMapTwiceReturnsSameProxy(t *testing.T) {
	inner := map[string]any{"x": 1}
	outer := map[string]any{"nested": inner}

	p := CreateState(outer)
	first := p.Get("nested")
	second := p.Get("nested")
	if first != second {
		t.Fatalf("reading the same nested map twice returned different proxies")
	}
}

// Array identity must survive restructuring operations such as filter,
// since a new Go slice built from the same underlying element maps
// should still resolve to the same cached Proxy per element.
func TestArrayElementProxyIdentityPreservedAcrossFilter(t *testing.T) {
	item1 := map[string]any{"id": 1, "done": false}
	item2 := map[string]any{"id": 2, "done": true}
	item3 := map[string]any{"id": 3, "done": false}

	list := CreateState([]any{item1, item2, item3})

	p0 := list.Get(0)
	p2 := list.Get(2)

	// Simulate a `.filter()` producing a brand-new backing slice over the
	// same underlying element objects.
	filtered := CreateState([]any{item1, item3})

	f0 := filtered.Get(0)
	f1 := filtered.Get(1)

	if p0 != f0 {
		t.Fatalf("element proxy identity not preserved for item1 across filter")
	}
	if p2 != f1 {
		t.Fatalf("element proxy identity not preserved for item3 across filter")
	}
}

func TestArrayProxyPushPopNotifyLength(t *testing.T) {
	arr := CreateState([]any{1, 2})

	lenRuns := 0
	_ = CreateEffect(func() {
		_ = arr.Get("length")
		lenRuns++
	})
	if lenRuns != 1 {
		t.Fatalf("initial lenRuns = %d, want 1", lenRuns)
	}

	arr.Push(3)
	if lenRuns != 2 {
		t.Fatalf("lenRuns after push = %d, want 2", lenRuns)
	}

	arr.Pop()
	if lenRuns != 3 {
		t.Fatalf("lenRuns after pop = %d, want 3", lenRuns)
	}
}

func TestArrayProxySpliceNotifiesFromStart(t *testing.T) {
	arr := CreateState([]any{"a", "b", "c"})

	runs1 := 0
	_ = CreateEffect(func() {
		_ = arr.Get(1)
		runs1++
	})

	arr.Splice(1, 1, "x", "y")
	if runs1 != 2 {
		t.Fatalf("runs on index 1 after splice = %d, want 2", runs1)
	}
	if arr.Len() != 4 {
		t.Fatalf("length after splice = %d, want 4", arr.Len())
	}
}

func TestStateAssignBatchesNotificationsPerObserver(t *testing.T) {
	p := CreateState(map[string]any{"a": 1, "b": 2})

	runs := 0
	_ = CreateEffect(func() {
		_ = p.Get("a")
		_ = p.Get("b")
		runs++
	})
	if runs != 1 {
		t.Fatalf("initial runs = %d, want 1", runs)
	}

	p.Assign(map[string]any{"a": 10, "b": 20})
	if runs != 2 {
		t.Fatalf("runs after Assign touching both deps = %d, want 2 (single notification)", runs)
	}
}

func TestStateDeleteNotifiesAndDropsSignal(t *testing.T) {
	p := CreateState(map[string]any{"a": 1})

	runs := 0
	_ = CreateEffect(func() {
		_ = p.Get("a")
		runs++
	})

	p.Delete("a")
	if runs != 2 {
		t.Fatalf("runs after delete = %d, want 2", runs)
	}
	if p.Has("a") {
		t.Fatalf("key still present after delete")
	}
}
