package store

import (
	"fmt"
	"time"

	"github.com/hciworks/interaction-core/internal/cache"
)

// #region message-cache

// NewMessageCache creates an in-memory cache of stream messages keyed by
// originating time, pruned per config.
func NewMessageCache(config cache.PruneConfig) *cache.Cache[time.Time, Message] {
	return cache.New(
		func(a, b time.Time) int { return a.Compare(b) },
		func(m Message) time.Time { return m.OriginatingTime },
		config,
	)
}

// #endregion message-cache

// #region hydrate

// LoadRange hydrates a message cache with the persisted messages of a
// stream in [start, end). The rows come back ordered by originating time,
// so the whole batch lands as a single cache change when it is contiguous.
func (s *Store) LoadRange(c *cache.Cache[time.Time, Message], streamID int64, start, end time.Time) (int, error) {
	msgs, err := s.Range(streamID, start, end)
	if err != nil {
		return 0, fmt.Errorf("load range: %w", err)
	}
	c.AddRange(msgs)
	return len(msgs), nil
}

// LoadTail hydrates a message cache with the last n persisted messages of a
// stream.
func (s *Store) LoadTail(c *cache.Cache[time.Time, Message], streamID int64, n int) (int, error) {
	msgs, err := s.Tail(streamID, n)
	if err != nil {
		return 0, fmt.Errorf("load tail: %w", err)
	}
	c.AddRange(msgs)
	return len(msgs), nil
}

// #endregion hydrate
