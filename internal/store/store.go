package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS streams (
	stream_id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL UNIQUE,
	type          TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	message_id        INTEGER PRIMARY KEY AUTOINCREMENT,
	stream_id         INTEGER NOT NULL,
	originating_time  INTEGER NOT NULL,
	payload           BLOB NOT NULL,
	FOREIGN KEY (stream_id) REFERENCES streams(stream_id)
);

CREATE INDEX IF NOT EXISTS idx_messages_stream_time
	ON messages(stream_id, originating_time);

CREATE TABLE IF NOT EXISTS transition_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	turn          INTEGER NOT NULL,
	from_state    TEXT NOT NULL,
	to_state      TEXT NOT NULL,
	event_kind    TEXT,
	prompt        TEXT,
	suppressed    INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transition_log_session
	ON transition_log(session_id, turn);
`
// #endregion schema

// #region store-struct
// Store persists streams of time-ordered messages in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region create-stream
// CreateStream creates a stream, or returns the existing one if a stream
// with that name already exists. Creating twice with a different type is an
// error.
func (s *Store) CreateStream(name, typ string) (Stream, error) {
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO streams (name, type, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO NOTHING`,
		name, typ, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Stream{}, fmt.Errorf("create stream %s: %w", name, err)
	}

	st, err := s.GetStream(name)
	if err != nil {
		return Stream{}, err
	}
	if st.Type != typ {
		return Stream{}, fmt.Errorf("stream %s already exists with type %s", name, st.Type)
	}
	return st, nil
}
// #endregion create-stream

// #region get-stream
// GetStream retrieves a stream by name.
func (s *Store) GetStream(name string) (Stream, error) {
	var st Stream
	var createdStr string
	err := s.db.QueryRow(
		`SELECT stream_id, name, type, created_at FROM streams WHERE name = ?`, name,
	).Scan(&st.ID, &st.Name, &st.Type, &createdStr)
	if err != nil {
		return Stream{}, fmt.Errorf("get stream %s: %w", name, err)
	}
	st.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return st, nil
}
// #endregion get-stream

// #region list-streams
// Streams returns all streams in creation order.
func (s *Store) Streams() ([]Stream, error) {
	rows, err := s.db.Query(
		`SELECT stream_id, name, type, created_at FROM streams ORDER BY stream_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list streams: %w", err)
	}
	defer rows.Close()

	var streams []Stream
	for rows.Next() {
		var st Stream
		var createdStr string
		if err := rows.Scan(&st.ID, &st.Name, &st.Type, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		st.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		streams = append(streams, st)
	}
	return streams, rows.Err()
}
// #endregion list-streams

// #region append
// Append persists one message to a stream.
func (s *Store) Append(streamID int64, originatingTime time.Time, payload []byte) (Message, error) {
	res, err := s.db.Exec(
		`INSERT INTO messages (stream_id, originating_time, payload) VALUES (?, ?, ?)`,
		streamID, originatingTime.UnixNano(), payload,
	)
	if err != nil {
		return Message{}, fmt.Errorf("append to stream %d: %w", streamID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Message{}, fmt.Errorf("last insert id: %w", err)
	}
	return Message{
		ID:              id,
		StreamID:        streamID,
		OriginatingTime: originatingTime,
		Payload:         payload,
	}, nil
}
// #endregion append

// #region append-batch
// AppendBatch persists a batch of messages to a stream atomically.
func (s *Store) AppendBatch(streamID int64, msgs []Message) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO messages (stream_id, originating_time, payload) VALUES (?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err := stmt.Exec(streamID, m.OriginatingTime.UnixNano(), m.Payload); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}
	return tx.Commit()
}
// #endregion append-batch

// #region range
// Range returns the messages of a stream with originating time in
// [start, end), ordered by originating time.
func (s *Store) Range(streamID int64, start, end time.Time) ([]Message, error) {
	rows, err := s.db.Query(
		`SELECT message_id, stream_id, originating_time, payload FROM messages
		 WHERE stream_id = ? AND originating_time >= ? AND originating_time < ?
		 ORDER BY originating_time, message_id`,
		streamID, start.UnixNano(), end.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("range stream %d: %w", streamID, err)
	}
	return scanMessages(rows)
}
// #endregion range

// #region tail
// Tail returns the last n messages of a stream, ordered by originating
// time.
func (s *Store) Tail(streamID int64, n int) ([]Message, error) {
	rows, err := s.db.Query(
		`SELECT message_id, stream_id, originating_time, payload FROM (
		   SELECT message_id, stream_id, originating_time, payload FROM messages
		   WHERE stream_id = ? ORDER BY originating_time DESC, message_id DESC LIMIT ?
		 ) ORDER BY originating_time, message_id`,
		streamID, n,
	)
	if err != nil {
		return nil, fmt.Errorf("tail stream %d: %w", streamID, err)
	}
	return scanMessages(rows)
}
// #endregion tail

// #region after
// After returns the messages of a stream with message ID greater than
// afterID, in insertion order. Used by pollers tailing a live stream.
func (s *Store) After(streamID, afterID int64) ([]Message, error) {
	rows, err := s.db.Query(
		`SELECT message_id, stream_id, originating_time, payload FROM messages
		 WHERE stream_id = ? AND message_id > ? ORDER BY message_id`,
		streamID, afterID,
	)
	if err != nil {
		return nil, fmt.Errorf("after stream %d: %w", streamID, err)
	}
	return scanMessages(rows)
}
// #endregion after

// #region count
// Count returns the number of messages in a stream.
func (s *Store) Count(streamID int64) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM messages WHERE stream_id = ?`, streamID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stream %d: %w", streamID, err)
	}
	return n, nil
}
// #endregion count

// #region scan
func scanMessages(rows *sql.Rows) ([]Message, error) {
	defer rows.Close()
	var msgs []Message
	for rows.Next() {
		var m Message
		var nanos int64
		if err := rows.Scan(&m.ID, &m.StreamID, &nanos, &m.Payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		m.OriginatingTime = time.Unix(0, nanos).UTC()
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
// #endregion scan
