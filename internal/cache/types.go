// Package cache provides an in-memory, key-ordered cache of timestamped
// items with windowed views that update as the cache mutates. Views are
// tracked weakly so data no longer covered by any live view can be pruned.
//
// The cache is owned by a single goroutine (typically the pipeline or UI
// loop); all mutation and view creation must happen on that goroutine or be
// externally serialized.
package cache

// #region view-mode
// ViewMode selects how a view's window boundaries behave as the cache mutates.
type ViewMode string

const (
	// ViewFixed keeps both window endpoints where they were at creation.
	ViewFixed ViewMode = "fixed"
	// ViewTailCount slides the start key to keep the last N items in view.
	ViewTailCount ViewMode = "tail_count"
	// ViewTailRange slides the start key to tailRangeFn(lastItemKey),
	// keeping a trailing key range (e.g. the last 30 seconds) in view.
	ViewTailRange ViewMode = "tail_range"
)

// #endregion view-mode

// #region change-type
// ChangeType enumerates structural change notifications.
type ChangeType string

const (
	ChangeAdd     ChangeType = "add"
	ChangeRemove  ChangeType = "remove"
	ChangeReplace ChangeType = "replace"
	ChangeReset   ChangeType = "reset"
)

// #endregion change-type

// #region change
// Change describes one structural mutation. Index and Items are relative to
// the collection that raised the change (the cache, or a view's window).
// For ChangeRemove, Index refers to positions before the removal took
// effect. Old is populated for ChangeReplace only.
type Change[V any] struct {
	Type  ChangeType
	Index int
	Items []V
	Old   []V
}

// #endregion change

// #region prune-config
// PruneConfig holds the tunables for the adaptive prune pass.
type PruneConfig struct {
	Threshold      int // initial mutation count before a prune is scheduled
	ThresholdFloor int // threshold is halved after a productive prune, down to this
	ThresholdCeil  int // threshold is doubled after a no-op prune, up to this
	BaseCapacity   int // pruning only runs while the cache holds more than this
}

// DefaultPruneConfig returns the default prune tuning. The exact hysteresis
// factors are tunables, not contract: they only need to keep prune frequency
// roughly matched to churn.
func DefaultPruneConfig() PruneConfig {
	return PruneConfig{
		Threshold:      10,
		ThresholdFloor: 10,
		ThresholdCeil:  640,
		BaseCapacity:   1024,
	}
}

// #endregion prune-config

// #region prune-stats
// PruneStats reports the outcome of a single prune pass.
type PruneStats struct {
	DeadViews    int // registry slots released because their view died
	ItemsRemoved int // cached items dropped as uncovered
	Threshold    int // threshold in effect after adaptation
}

// #endregion prune-stats
