package cache

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"weak"
)

// #region cache-struct

// Cache is an ordered collection of items sorted ascending by an extracted
// key. Duplicate keys are allowed. Every mutation raises a detailed
// range-level change and a collapsed change, and keeps all registered views
// in sync before the mutating call returns.
type Cache[K, V any] struct {
	items   []V
	compare func(K, K) int
	keyOf   func(V) K

	views []*viewSlot[K, V]

	detailed  []func(Change[V])
	collapsed []func(Change[V])

	config       PruneConfig
	threshold    int
	changedCount int
	needsPruning bool
	schedule     func(func())
}

// #endregion cache-struct

// #region constructor

// New creates a cache ordered by compare over keys extracted by keyOf.
func New[K, V any](compare func(K, K) int, keyOf func(V) K, config PruneConfig) *Cache[K, V] {
	return &Cache[K, V]{
		compare:   compare,
		keyOf:     keyOf,
		config:    config,
		threshold: config.Threshold,
	}
}

// DeferPruning routes prune passes through schedule instead of running them
// inline when the mutation threshold trips. The scheduler must run tasks on
// the cache's owning goroutine (e.g. an event-loop idle callback); pruning
// never runs on a separate worker.
func (c *Cache[K, V]) DeferPruning(schedule func(func())) {
	c.schedule = schedule
}

// #endregion constructor

// #region accessors

// Count returns the number of cached items.
func (c *Cache[K, V]) Count() int {
	return len(c.items)
}

// At returns the item at index i, or false when i is outside [0, Count).
func (c *Cache[K, V]) At(i int) (V, bool) {
	if i < 0 || i >= len(c.items) {
		var zero V
		return zero, false
	}
	return c.items[i], true
}

// Snapshot returns a copy of the cached items in key order.
func (c *Cache[K, V]) Snapshot() []V {
	return slices.Clone(c.items)
}

// TryGetValue looks up the first item whose key compares equal to key.
// Ties among duplicate keys break toward the lowest index.
func (c *Cache[K, V]) TryGetValue(key K) (V, bool) {
	i := c.bound(key, true)
	if i < len(c.items) && c.compare(c.keyOf(c.items[i]), key) == 0 {
		return c.items[i], true
	}
	var zero V
	return zero, false
}

// #endregion accessors

// #region search

// bound is a lower/upper-bound binary search over the item keys. With
// leftmost it returns the first index whose key compares >= key; otherwise
// the first index whose key compares > key.
func (c *Cache[K, V]) bound(key K, leftmost bool) int {
	lo, hi := 0, len(c.items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		cmp := c.compare(c.keyOf(c.items[mid]), key)
		if cmp < 0 || (!leftmost && cmp == 0) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// #endregion search

// #region add

// Add inserts item in key order, after any existing items with an equal key.
func (c *Cache[K, V]) Add(item V) {
	pos := c.bound(c.keyOf(item), false)
	c.items = slices.Insert(c.items, pos, item)
	c.raise(Change[V]{Type: ChangeAdd, Index: pos, Items: []V{item}}, true)
}

// AddRange inserts a batch of items, maintaining key order. The batch is
// sorted first; each maximal run that lands contiguously raises one Add
// change with the exact inserted range and its starting index. A batch of
// keys past the current tail (the streaming append case) raises a single
// change.
func (c *Cache[K, V]) AddRange(items []V) {
	if len(items) == 0 {
		return
	}
	batch := slices.Clone(items)
	sort.SliceStable(batch, func(i, j int) bool {
		return c.compare(c.keyOf(batch[i]), c.keyOf(batch[j])) < 0
	})

	i := 0
	for i < len(batch) {
		pos := c.bound(c.keyOf(batch[i]), false)
		j := i + 1
		for j < len(batch) {
			// Equal keys start a new chunk so they land after existing
			// equal-key items, same as Add.
			if pos < len(c.items) && c.compare(c.keyOf(batch[j]), c.keyOf(c.items[pos])) >= 0 {
				break
			}
			j++
		}
		chunk := batch[i:j]
		c.items = slices.Insert(c.items, pos, chunk...)
		c.raise(Change[V]{Type: ChangeAdd, Index: pos, Items: slices.Clone(chunk)}, true)
		i = j
	}
}

// #endregion add

// #region remove

// RemoveAt removes the item at index i.
func (c *Cache[K, V]) RemoveAt(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("remove at %d of %d: %w", i, len(c.items), ErrIndexOutOfRange)
	}
	removed := []V{c.items[i]}
	c.items = slices.Delete(c.items, i, i+1)
	c.raise(Change[V]{Type: ChangeRemove, Index: i, Items: removed}, true)
	return nil
}

// RemoveRange removes count items starting at index start.
func (c *Cache[K, V]) RemoveRange(start, count int) error {
	if start < 0 || count < 0 || start+count > len(c.items) {
		return fmt.Errorf("remove range [%d,%d) of %d: %w", start, start+count, len(c.items), ErrIndexOutOfRange)
	}
	if count == 0 {
		return nil
	}
	c.removeRange(start, count, true)
	return nil
}

// removeRange deletes without bounds checks. counted controls whether the
// change feeds the prune trigger; prune-initiated removals do not.
func (c *Cache[K, V]) removeRange(start, count int, counted bool) {
	removed := slices.Clone(c.items[start : start+count])
	c.items = slices.Delete(c.items, start, start+count)
	c.raise(Change[V]{Type: ChangeRemove, Index: start, Items: removed}, counted)
}

// Clear removes all items and raises a full reset.
func (c *Cache[K, V]) Clear() {
	c.items = nil
	c.raise(Change[V]{Type: ChangeReset}, true)
}

// #endregion remove

// #region replace

// ReplaceRange replaces the contiguous range starting at start with
// newItems. The replacement must have the same length as the replaced range
// and must preserve ascending key order against its neighbors; no partial
// mutation is applied on failure.
func (c *Cache[K, V]) ReplaceRange(start int, count int, newItems []V) error {
	if start < 0 || count < 0 || start+count > len(c.items) {
		return fmt.Errorf("replace range [%d,%d) of %d: %w", start, start+count, len(c.items), ErrIndexOutOfRange)
	}
	if len(newItems) != count {
		return fmt.Errorf("replace %d items with %d: %w", count, len(newItems), ErrLengthMismatch)
	}
	if count == 0 {
		return nil
	}
	for i := 1; i < len(newItems); i++ {
		if c.compare(c.keyOf(newItems[i-1]), c.keyOf(newItems[i])) > 0 {
			return fmt.Errorf("replacement not sorted at %d: %w", i, ErrOrderViolation)
		}
	}
	if start > 0 && c.compare(c.keyOf(c.items[start-1]), c.keyOf(newItems[0])) > 0 {
		return fmt.Errorf("replacement head precedes predecessor: %w", ErrOrderViolation)
	}
	if end := start + count; end < len(c.items) && c.compare(c.keyOf(newItems[count-1]), c.keyOf(c.items[end])) > 0 {
		return fmt.Errorf("replacement tail follows successor: %w", ErrOrderViolation)
	}

	old := slices.Clone(c.items[start : start+count])
	copy(c.items[start:], newItems)
	c.raise(Change[V]{Type: ChangeReplace, Index: start, Items: slices.Clone(newItems), Old: old}, true)
	return nil
}

// #endregion replace

// #region get-view

// GetView returns a live view over [startKey, endKey). Identical requests
// are deduplicated: a live view with the same identity is returned as-is,
// a dead registry slot with the same identity is re-attached to a fresh
// view. Tail-mode identity ignores startKey, which is derived from the
// cache tail and slides as the cache mutates.
func (c *Cache[K, V]) GetView(mode ViewMode, startKey, endKey K, tailCount int, tailRangeFn func(K) K) (*View[K, V], error) {
	if c.compare(startKey, endKey) > 0 {
		return nil, fmt.Errorf("get view: %w", ErrInvalidRange)
	}
	switch mode {
	case ViewFixed:
	case ViewTailCount:
		if tailCount <= 0 {
			return nil, fmt.Errorf("get view: tail count %d: %w", tailCount, ErrIndexOutOfRange)
		}
	case ViewTailRange:
		if tailRangeFn == nil {
			return nil, fmt.Errorf("get view: nil tail range function: %w", ErrInvalidRange)
		}
	default:
		return nil, fmt.Errorf("get view: unknown mode %q: %w", mode, ErrInvalidRange)
	}

	fnPtr := fnPointer(tailRangeFn)
	for _, slot := range c.views {
		if !c.slotMatches(slot, mode, startKey, endKey, tailCount, fnPtr) {
			continue
		}
		if v := slot.resolve(); v != nil {
			return v, nil
		}
		// Dead slot with the same identity: rebuild and re-register in place.
		v := c.buildView(slot, mode, startKey, endKey, tailCount, tailRangeFn)
		return v, nil
	}

	slot := &viewSlot[K, V]{
		mode:      mode,
		startKey:  startKey,
		endKey:    endKey,
		tailCount: tailCount,
		tailFnPtr: fnPtr,
	}
	c.views = append(c.views, slot)
	return c.buildView(slot, mode, startKey, endKey, tailCount, tailRangeFn), nil
}

func (c *Cache[K, V]) buildView(slot *viewSlot[K, V], mode ViewMode, startKey, endKey K, tailCount int, tailRangeFn func(K) K) *View[K, V] {
	v := &View[K, V]{
		cache:     c,
		slot:      slot,
		mode:      mode,
		startKey:  startKey,
		endKey:    endKey,
		tailCount: tailCount,
		tailRange: tailRangeFn,
	}
	v.updateKeys()
	v.updateIndexes()
	slot.closed = false
	slot.ref = weak.Make(v)
	return v
}

func (c *Cache[K, V]) slotMatches(slot *viewSlot[K, V], mode ViewMode, startKey, endKey K, tailCount int, fnPtr uintptr) bool {
	if slot.mode != mode || slot.tailCount != tailCount || slot.tailFnPtr != fnPtr {
		return false
	}
	if c.compare(slot.endKey, endKey) != 0 {
		return false
	}
	if mode == ViewFixed && c.compare(slot.startKey, startKey) != 0 {
		return false
	}
	return true
}

// fnPointer identifies a tail range function for view deduplication. Two
// views share identity only when constructed with the very same function
// value.
func fnPointer[K any](fn func(K) K) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// ViewCount returns the number of registered view slots, live or dead.
func (c *Cache[K, V]) ViewCount() int {
	return len(c.views)
}

// LiveViewCount returns the number of registered views that still resolve.
func (c *Cache[K, V]) LiveViewCount() int {
	n := 0
	for _, slot := range c.views {
		if slot.resolve() != nil {
			n++
		}
	}
	return n
}

// #endregion get-view

// #region subscribe

// OnDetailedChanged registers fn for range-level change notifications.
func (c *Cache[K, V]) OnDetailedChanged(fn func(Change[V])) {
	c.detailed = append(c.detailed, fn)
}

// OnChanged registers fn for collapsed notifications: multi-item adds
// arrive as a reset, for consumers that cannot process range adds.
func (c *Cache[K, V]) OnChanged(fn func(Change[V])) {
	c.collapsed = append(c.collapsed, fn)
}

// collapse turns a multi-item add into a reset; other changes pass through.
func collapse[V any](ch Change[V]) Change[V] {
	if ch.Type == ChangeAdd && len(ch.Items) > 1 {
		return Change[V]{Type: ChangeReset}
	}
	return ch
}

// #endregion subscribe

// #region raise

// raise synchronously delivers a change to all live views, then to external
// subscribers, then feeds the prune trigger. Views are updated before the
// mutating call returns, so concurrent reads from other views never observe
// stale indexes.
func (c *Cache[K, V]) raise(ch Change[V], counted bool) {
	for _, slot := range c.views {
		if v := slot.resolve(); v != nil {
			v.onCacheChanged(ch)
		}
	}
	for _, fn := range c.detailed {
		fn(ch)
	}
	if len(c.collapsed) > 0 {
		collapsed := collapse(ch)
		for _, fn := range c.collapsed {
			fn(collapsed)
		}
	}
	if counted {
		c.changedCount++
		if c.changedCount > c.threshold && len(c.items) > c.config.BaseCapacity {
			c.changedCount = 0
			c.needsPruning = true
			if c.schedule != nil {
				c.schedule(c.deferredPrune)
			} else {
				c.deferredPrune()
			}
		}
	}
}

// #endregion raise
