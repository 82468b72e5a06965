package store

import "time"

// #region stream

// Stream is a named, typed sequence of time-ordered messages.
type Stream struct {
	ID        int64
	Name      string
	Type      string
	CreatedAt time.Time
}

// #endregion stream

// #region message

// Message is one persisted stream element. OriginatingTime is the time the
// value was produced at its source, which is the ordering key for the
// stream; Payload is the JSON-encoded value.
type Message struct {
	ID              int64
	StreamID        int64
	OriginatingTime time.Time
	Payload         []byte
}

// #endregion message
