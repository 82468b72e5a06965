package cache

import "errors"

// #region errors
var (
	// ErrInvalidRange is returned by GetView when startKey compares after endKey.
	ErrInvalidRange = errors.New("start key compares after end key")

	// ErrIndexOutOfRange is returned by index-based accessors outside [0, Count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is returned by ReplaceRange when the replacement has
	// a different length than the replaced range.
	ErrLengthMismatch = errors.New("replacement length differs from replaced range")

	// ErrKeyOutsideWindow is returned by View.Add when the item's key falls
	// outside the view's current window.
	ErrKeyOutsideWindow = errors.New("item key outside view window")

	// ErrOrderViolation is returned when a mutation would break ascending
	// key order.
	ErrOrderViolation = errors.New("mutation would violate key order")

	// ErrViewClosed is returned by operations on a closed view.
	ErrViewClosed = errors.New("view is closed")
)

// #endregion errors
