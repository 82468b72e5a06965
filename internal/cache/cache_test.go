package cache

import (
	"errors"
	"testing"
)

type entry struct {
	key int
	val string
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func entryKey(e entry) int { return e.key }

func makeCache() *Cache[int, entry] {
	return New(intCompare, entryKey, DefaultPruneConfig())
}

func assertSorted(t *testing.T, c *Cache[int, entry]) {
	t.Helper()
	items := c.Snapshot()
	for i := 1; i < len(items); i++ {
		if items[i-1].key > items[i].key {
			t.Fatalf("sort invariant broken at %d: %d > %d", i, items[i-1].key, items[i].key)
		}
	}
}

func keysOf(items []entry) []int {
	keys := make([]int, len(items))
	for i, it := range items {
		keys[i] = it.key
	}
	return keys
}

func assertKeys(t *testing.T, got []entry, want ...int) {
	t.Helper()
	keys := keysOf(got)
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestAddMaintainsSortOrder(t *testing.T) {
	c := makeCache()
	for _, k := range []int{5, 1, 9, 3, 7, 5, 2} {
		c.Add(entry{key: k})
		assertSorted(t, c)
	}
	assertKeys(t, c.Snapshot(), 1, 2, 3, 5, 5, 7, 9)
}

func TestAddRangeMaintainsSortOrder(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 4}, {key: 8}})
	assertSorted(t, c)
	c.AddRange([]entry{{key: 6}, {key: 2}, {key: 10}})
	assertSorted(t, c)
	assertKeys(t, c.Snapshot(), 2, 4, 6, 8, 10)
}

func TestAddRangeDuplicateKeysLandAfterExisting(t *testing.T) {
	c := makeCache()
	c.Add(entry{key: 1, val: "a"})
	c.Add(entry{key: 3, val: "old"})
	c.Add(entry{key: 5, val: "b"})

	// Batch and single-item inserts place equal keys the same way: after
	// the items already cached.
	c.AddRange([]entry{{key: 3, val: "new"}, {key: 4, val: "c"}})
	assertSorted(t, c)
	assertKeys(t, c.Snapshot(), 1, 3, 3, 4, 5)
	items := c.Snapshot()
	if items[1].val != "old" || items[2].val != "new" {
		t.Fatalf("expected batch duplicate after existing item, got %q then %q", items[1].val, items[2].val)
	}
}

func TestAddRangeAppendRaisesSingleChange(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 2}})

	var changes []Change[entry]
	c.OnDetailedChanged(func(ch Change[entry]) { changes = append(changes, ch) })

	c.AddRange([]entry{{key: 3}, {key: 4}, {key: 5}})

	if len(changes) != 1 {
		t.Fatalf("expected 1 change for appended batch, got %d", len(changes))
	}
	if changes[0].Type != ChangeAdd {
		t.Fatalf("expected add, got %s", changes[0].Type)
	}
	if changes[0].Index != 2 {
		t.Fatalf("expected starting index 2, got %d", changes[0].Index)
	}
	assertKeys(t, changes[0].Items, 3, 4, 5)
}

func TestAddRangeInterleavedSplitsIntoRuns(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 5}})

	var changes []Change[entry]
	c.OnDetailedChanged(func(ch Change[entry]) { changes = append(changes, ch) })

	c.AddRange([]entry{{key: 2}, {key: 6}})

	if len(changes) != 2 {
		t.Fatalf("expected 2 changes for interleaved batch, got %d", len(changes))
	}
	assertKeys(t, changes[0].Items, 2)
	if changes[0].Index != 1 {
		t.Fatalf("expected first run at index 1, got %d", changes[0].Index)
	}
	assertKeys(t, changes[1].Items, 6)
	if changes[1].Index != 3 {
		t.Fatalf("expected second run at index 3, got %d", changes[1].Index)
	}
	assertKeys(t, c.Snapshot(), 1, 2, 5, 6)
}

func TestTryGetValueFirstOfEqualKeys(t *testing.T) {
	c := makeCache()
	c.Add(entry{key: 3, val: "first"})
	c.Add(entry{key: 3, val: "second"})
	c.Add(entry{key: 1, val: "low"})

	got, ok := c.TryGetValue(3)
	if !ok {
		t.Fatal("expected hit for key 3")
	}
	if got.val != "first" {
		t.Fatalf("expected lowest-index duplicate, got %q", got.val)
	}
}

func TestTryGetValueMissing(t *testing.T) {
	c := makeCache()
	c.Add(entry{key: 2})
	if _, ok := c.TryGetValue(3); ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestRemoveAt(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 2}, {key: 3}})

	var changes []Change[entry]
	c.OnDetailedChanged(func(ch Change[entry]) { changes = append(changes, ch) })

	if err := c.RemoveAt(1); err != nil {
		t.Fatalf("remove at: %v", err)
	}
	assertKeys(t, c.Snapshot(), 1, 3)
	if len(changes) != 1 || changes[0].Type != ChangeRemove || changes[0].Index != 1 {
		t.Fatalf("unexpected change %+v", changes)
	}
	assertKeys(t, changes[0].Items, 2)

	if err := c.RemoveAt(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := c.RemoveAt(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRemoveRange(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 2}, {key: 3}, {key: 4}})

	if err := c.RemoveRange(1, 2); err != nil {
		t.Fatalf("remove range: %v", err)
	}
	assertKeys(t, c.Snapshot(), 1, 4)

	if err := c.RemoveRange(1, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestClearRaisesReset(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 2}})

	var changes []Change[entry]
	c.OnDetailedChanged(func(ch Change[entry]) { changes = append(changes, ch) })

	c.Clear()
	if c.Count() != 0 {
		t.Fatalf("expected empty cache, got %d items", c.Count())
	}
	if len(changes) != 1 || changes[0].Type != ChangeReset {
		t.Fatalf("expected one reset, got %+v", changes)
	}
}

func TestReplaceRange(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 3}, {key: 5}, {key: 7}})

	var changes []Change[entry]
	c.OnDetailedChanged(func(ch Change[entry]) { changes = append(changes, ch) })

	err := c.ReplaceRange(1, 2, []entry{{key: 3, val: "new"}, {key: 4, val: "new"}})
	if err != nil {
		t.Fatalf("replace range: %v", err)
	}
	if c.Count() != 4 {
		t.Fatalf("replace must leave count unchanged, got %d", c.Count())
	}
	assertSorted(t, c)
	assertKeys(t, c.Snapshot(), 1, 3, 4, 7)

	if len(changes) != 1 || changes[0].Type != ChangeReplace || changes[0].Index != 1 {
		t.Fatalf("unexpected change %+v", changes)
	}
	assertKeys(t, changes[0].Items, 3, 4)
	assertKeys(t, changes[0].Old, 3, 5)
}

func TestReplaceRangeLengthMismatch(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 2}, {key: 3}})

	err := c.ReplaceRange(0, 2, []entry{{key: 1}})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	// No partial mutation applied.
	assertKeys(t, c.Snapshot(), 1, 2, 3)
}

func TestReplaceRangeOrderViolation(t *testing.T) {
	c := makeCache()
	c.AddRange([]entry{{key: 1}, {key: 2}, {key: 3}})

	err := c.ReplaceRange(1, 1, []entry{{key: 9}})
	if !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation, got %v", err)
	}
	assertKeys(t, c.Snapshot(), 1, 2, 3)
}

func TestCollapsedChangeTurnsMultiAddIntoReset(t *testing.T) {
	c := makeCache()

	var collapsed []Change[entry]
	c.OnChanged(func(ch Change[entry]) { collapsed = append(collapsed, ch) })

	c.Add(entry{key: 1})
	c.AddRange([]entry{{key: 2}, {key: 3}})

	if len(collapsed) != 2 {
		t.Fatalf("expected 2 collapsed changes, got %d", len(collapsed))
	}
	if collapsed[0].Type != ChangeAdd {
		t.Fatalf("single add should pass through, got %s", collapsed[0].Type)
	}
	if collapsed[1].Type != ChangeReset {
		t.Fatalf("multi-item add should collapse to reset, got %s", collapsed[1].Type)
	}
}

func TestAtBounds(t *testing.T) {
	c := makeCache()
	c.Add(entry{key: 1, val: "a"})

	if got, ok := c.At(0); !ok || got.val != "a" {
		t.Fatalf("expected item at 0, got %+v ok=%v", got, ok)
	}
	if _, ok := c.At(1); ok {
		t.Fatal("expected miss past end")
	}
	if _, ok := c.At(-1); ok {
		t.Fatal("expected miss below zero")
	}
}
