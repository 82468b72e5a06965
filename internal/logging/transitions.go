package logging

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hciworks/interaction-core/internal/dialog"
)

// #region transition-log
// TransitionLog persists dialog transitions to the transition_log table.
// It implements dialog.TransitionSink.
type TransitionLog struct {
	db *sql.DB
}

// NewTransitionLog creates a transition log over an open database that has
// been migrated by the store.
func NewTransitionLog(db *sql.DB) *TransitionLog {
	return &TransitionLog{db: db}
}
// #endregion transition-log

// #region save
// SaveTransition writes one transition row.
func (l *TransitionLog) SaveTransition(tr dialog.Transition) error {
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO transition_log (session_id, turn, from_state, to_state, event_kind, prompt, suppressed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tr.SessionID,
		tr.Turn,
		tr.FromState,
		tr.ToState,
		nullIfEmpty(tr.EventKind),
		nullIfEmpty(tr.Prompt),
		boolToInt(tr.Suppressed),
		tr.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save transition: %w", err)
	}
	return nil
}
// #endregion save

// #region list
// ListTransitions returns a session's transitions in turn order.
func (l *TransitionLog) ListTransitions(sessionID string) ([]dialog.Transition, error) {
	rows, err := l.db.Query(
		`SELECT session_id, turn, from_state, to_state, event_kind, prompt, suppressed, created_at
		 FROM transition_log WHERE session_id = ? ORDER BY turn`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	defer rows.Close()

	var trs []dialog.Transition
	for rows.Next() {
		var tr dialog.Transition
		var eventKind, prompt sql.NullString
		var suppressed int
		var createdStr string
		if err := rows.Scan(&tr.SessionID, &tr.Turn, &tr.FromState, &tr.ToState, &eventKind, &prompt, &suppressed, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if eventKind.Valid {
			tr.EventKind = eventKind.String
		}
		if prompt.Valid {
			tr.Prompt = prompt.String
		}
		tr.Suppressed = suppressed != 0
		tr.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		trs = append(trs, tr)
	}
	return trs, rows.Err()
}
// #endregion list

// #region sessions
// SessionSummary aggregates one session's transitions.
type SessionSummary struct {
	SessionID string
	Turns     int
	FirstAt   time.Time
	LastAt    time.Time
}

// Sessions returns a summary per recorded session, most recent first.
func (l *TransitionLog) Sessions() ([]SessionSummary, error) {
	rows, err := l.db.Query(
		`SELECT session_id, COUNT(*), MIN(created_at), MAX(created_at)
		 FROM transition_log GROUP BY session_id ORDER BY MAX(created_at) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sums []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var firstStr, lastStr string
		if err := rows.Scan(&sum.SessionID, &sum.Turns, &firstStr, &lastStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		sum.FirstAt, _ = time.Parse(time.RFC3339Nano, firstStr)
		sum.LastAt, _ = time.Parse(time.RFC3339Nano, lastStr)
		sums = append(sums, sum)
	}
	return sums, rows.Err()
}
// #endregion sessions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
// #endregion helpers
