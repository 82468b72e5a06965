package cache

import (
	"log"
	"sort"
)

// #region dead-views

// PruneDeadViews removes registry slots whose view was closed or collected.
// It runs synchronously and touches no items; uncovered items are removed by
// the next full prune pass.
func (c *Cache[K, V]) PruneDeadViews() int {
	kept := c.views[:0]
	dead := 0
	for _, slot := range c.views {
		if slot.resolve() != nil {
			kept = append(kept, slot)
		} else {
			dead++
		}
	}
	c.views = kept
	return dead
}

// #endregion dead-views

// #region prune

// Prune runs a full prune pass immediately: dead view slots are dropped,
// then every cached item not covered by the union of the live views'
// [startKey, endKey) windows is removed. With no live views the cache is
// cleared entirely. The mutation threshold adapts afterwards: halved after
// a pass that removed items, doubled after a no-op pass, clamped to the
// configured floor and ceiling.
func (c *Cache[K, V]) Prune() PruneStats {
	c.needsPruning = false
	return c.runPrune()
}

// deferredPrune is the scheduled form of Prune. The needsPruning flag is a
// re-entrancy guard: a second queued call becomes a no-op.
func (c *Cache[K, V]) deferredPrune() {
	if !c.needsPruning {
		return
	}
	c.needsPruning = false
	c.runPrune()
}

func (c *Cache[K, V]) runPrune() PruneStats {
	var stats PruneStats
	stats.DeadViews = c.PruneDeadViews()

	if len(c.items) > 0 {
		if len(c.views) == 0 {
			stats.ItemsRemoved = len(c.items)
			c.items = nil
			c.raise(Change[V]{Type: ChangeReset}, false)
		} else {
			stats.ItemsRemoved = c.removeUncovered()
		}
	}

	if stats.ItemsRemoved > 0 {
		c.threshold = max(c.threshold/2, c.config.ThresholdFloor)
	} else {
		c.threshold = min(c.threshold*2, c.config.ThresholdCeil)
	}
	stats.Threshold = c.threshold

	if stats.DeadViews > 0 || stats.ItemsRemoved > 0 {
		log.Printf("[CACHE] prune: dead_views=%d items_removed=%d threshold=%d count=%d",
			stats.DeadViews, stats.ItemsRemoved, c.threshold, len(c.items))
	}
	return stats
}

// #endregion prune

// #region coverage

// removeUncovered walks the live views in window order and removes every
// item outside the union of their index ranges. Removals run back to front
// so earlier indexes stay valid, and bypass the prune trigger.
func (c *Cache[K, V]) removeUncovered() int {
	slots := make([]*viewSlot[K, V], len(c.views))
	copy(slots, c.views)
	sort.SliceStable(slots, func(i, j int) bool {
		if cmp := c.compare(slots[i].startKey, slots[j].startKey); cmp != 0 {
			return cmp < 0
		}
		return c.compare(slots[i].endKey, slots[j].endKey) < 0
	})

	type span struct{ lo, hi int }
	var covered []span
	for _, slot := range slots {
		lo := c.bound(slot.startKey, true)
		hi := c.bound(slot.endKey, true)
		if lo >= hi {
			continue
		}
		if n := len(covered); n > 0 && lo <= covered[n-1].hi {
			if hi > covered[n-1].hi {
				covered[n-1].hi = hi
			}
			continue
		}
		covered = append(covered, span{lo, hi})
	}

	removed := 0
	cursor := len(c.items)
	for i := len(covered) - 1; i >= 0; i-- {
		if gap := cursor - covered[i].hi; gap > 0 {
			c.removeRange(covered[i].hi, gap, false)
			removed += gap
		}
		cursor = covered[i].lo
	}
	if cursor > 0 {
		c.removeRange(0, cursor, false)
		removed += cursor
	}
	return removed
}

// #endregion coverage
