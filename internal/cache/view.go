package cache

import (
	"fmt"
	"log"
	"slices"
	"weak"
)

// #region view-slot

// viewSlot is the cache-side registration of a view. The slot holds only a
// weak handle so a view with no remaining strong holders can be collected;
// sliding views update their identity fields in place, preserving the slot
// (and therefore the handle other code observes) across re-keying.
type viewSlot[K, V any] struct {
	mode      ViewMode
	startKey  K
	endKey    K
	tailCount int
	tailFnPtr uintptr
	ref       weak.Pointer[View[K, V]]
	closed    bool
}

// resolve returns the registered view, or nil when it was closed or
// collected.
func (s *viewSlot[K, V]) resolve() *View[K, V] {
	if s.closed {
		return nil
	}
	return s.ref.Value()
}

// #endregion view-slot

// #region view-struct

// View is a read-mostly windowed projection of a cache, backed by the
// contiguous index range [startIndex, endIndex) into the parent's storage.
// It holds no item storage of its own. All methods must run on the cache's
// owning goroutine.
type View[K, V any] struct {
	cache     *Cache[K, V]
	slot      *viewSlot[K, V]
	mode      ViewMode
	startKey  K
	endKey    K
	tailCount int
	tailRange func(K) K

	startIndex int
	endIndex   int

	detailed  []func(Change[V])
	collapsed []func(Change[V])
	closed    bool
}

// #endregion view-struct

// #region view-accessors

// Len returns the number of items currently in the window.
func (v *View[K, V]) Len() int {
	return v.endIndex - v.startIndex
}

// At returns the window item at view-relative index i, or false when i is
// outside [0, Len).
func (v *View[K, V]) At(i int) (V, bool) {
	if i < 0 || i >= v.Len() {
		var zero V
		return zero, false
	}
	return v.cache.items[v.startIndex+i], true
}

// Items returns a copy of the window contents in key order.
func (v *View[K, V]) Items() []V {
	return slices.Clone(v.cache.items[v.startIndex:v.endIndex])
}

// StartKey returns the window's current inclusive start boundary. For tail
// modes this slides as the cache mutates.
func (v *View[K, V]) StartKey() K {
	return v.startKey
}

// EndKey returns the window's exclusive end boundary.
func (v *View[K, V]) EndKey() K {
	return v.endKey
}

// Mode returns the view's window mode.
func (v *View[K, V]) Mode() ViewMode {
	return v.mode
}

// #endregion view-accessors

// #region view-mutate

// Add inserts item through the parent cache. The item's key must fall
// within the view's current window [startKey, endKey); otherwise the cache
// is left unmodified.
func (v *View[K, V]) Add(item V) error {
	if v.closed {
		return ErrViewClosed
	}
	key := v.cache.keyOf(item)
	if v.cache.compare(key, v.startKey) < 0 || v.cache.compare(key, v.endKey) >= 0 {
		return fmt.Errorf("view add: %w", ErrKeyOutsideWindow)
	}
	v.cache.Add(item)
	return nil
}

// Insert adds item through the parent cache. The index is advisory only:
// storage is shared and key-ordered, so the item lands at its sorted
// position regardless. An index other than Len is logged as suspicious.
func (v *View[K, V]) Insert(i int, item V) error {
	if i != v.Len() {
		log.Printf("[CACHE] view insert at index %d ignored (len=%d); storage is key-ordered", i, v.Len())
	}
	return v.Add(item)
}

// RemoveAt removes the window item at view-relative index i through the
// parent cache.
func (v *View[K, V]) RemoveAt(i int) error {
	if v.closed {
		return ErrViewClosed
	}
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("view remove at %d of %d: %w", i, v.Len(), ErrIndexOutOfRange)
	}
	return v.cache.RemoveAt(v.startIndex + i)
}

// #endregion view-mutate

// #region view-subscribe

// OnDetailedChanged registers fn for range-level changes clipped to the
// window, with view-relative indexes.
func (v *View[K, V]) OnDetailedChanged(fn func(Change[V])) {
	v.detailed = append(v.detailed, fn)
}

// OnChanged registers fn for collapsed notifications: multi-item adds
// arrive as a reset.
func (v *View[K, V]) OnChanged(fn func(Change[V])) {
	v.collapsed = append(v.collapsed, fn)
}

// #endregion view-subscribe

// #region view-close

// Close releases the view's registration deterministically. Closed views
// stop receiving changes; their slot is dropped at the next prune pass.
// Dropping all strong references has the same effect once the garbage
// collector runs.
func (v *View[K, V]) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.slot.closed = true
}

// #endregion view-close

// #region view-update

// onCacheChanged keeps the window synchronized with a parent mutation and
// re-raises the overlapping portion with view-relative indexes. Key update
// runs first: a sliding window's identity must track its own movement.
func (v *View[K, V]) onCacheChanged(ch Change[V]) {
	if v.closed {
		return
	}
	v.updateKeys()

	switch ch.Type {
	case ChangeAdd:
		v.updateIndexes()
		lo := max(ch.Index, v.startIndex)
		hi := min(ch.Index+len(ch.Items), v.endIndex)
		if lo < hi {
			v.raise(Change[V]{
				Type:  ChangeAdd,
				Index: lo - v.startIndex,
				Items: slices.Clone(ch.Items[lo-ch.Index : hi-ch.Index]),
			})
		}

	case ChangeRemove:
		// Clip against the window as it stood before the removal; the
		// change indexes refer to pre-removal positions.
		oldStart, oldEnd := v.startIndex, v.endIndex
		v.updateIndexes()
		lo := max(ch.Index, oldStart)
		hi := min(ch.Index+len(ch.Items), oldEnd)
		if lo < hi {
			v.raise(Change[V]{
				Type:  ChangeRemove,
				Index: lo - oldStart,
				Items: slices.Clone(ch.Items[lo-ch.Index : hi-ch.Index]),
			})
		}

	case ChangeReplace:
		v.updateIndexes()
		lo := max(ch.Index, v.startIndex)
		hi := min(ch.Index+len(ch.Items), v.endIndex)
		if lo < hi {
			v.raise(Change[V]{
				Type:  ChangeReplace,
				Index: lo - v.startIndex,
				Items: slices.Clone(ch.Items[lo-ch.Index : hi-ch.Index]),
				Old:   slices.Clone(ch.Old[lo-ch.Index : hi-ch.Index]),
			})
		}

	case ChangeReset:
		v.updateIndexes()
		v.raise(Change[V]{Type: ChangeReset})
	}
}

// updateKeys recomputes the sliding start key for tail modes from the
// current cache tail. When it moves, the registry slot is re-keyed in
// place: same slot, same weak handle, so other holders are unaffected.
func (v *View[K, V]) updateKeys() {
	n := len(v.cache.items)
	if n == 0 {
		return
	}
	var newStart K
	switch v.mode {
	case ViewTailCount:
		idx := n - v.tailCount
		if idx < 0 {
			idx = 0
		}
		newStart = v.cache.keyOf(v.cache.items[idx])
	case ViewTailRange:
		newStart = v.tailRange(v.cache.keyOf(v.cache.items[n-1]))
	default:
		return
	}
	if v.cache.compare(newStart, v.startKey) != 0 {
		v.startKey = newStart
		v.slot.startKey = newStart
	}
}

// updateIndexes recomputes the backing index range by binary search on the
// window boundaries.
func (v *View[K, V]) updateIndexes() {
	v.startIndex = v.cache.bound(v.startKey, true)
	v.endIndex = v.cache.bound(v.endKey, true)
}

func (v *View[K, V]) raise(ch Change[V]) {
	for _, fn := range v.detailed {
		fn(ch)
	}
	if len(v.collapsed) > 0 {
		collapsed := collapse(ch)
		for _, fn := range v.collapsed {
			fn(collapsed)
		}
	}
}

// #endregion view-update
