package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hciworks/interaction-core/internal/dialog"
	"github.com/hciworks/interaction-core/internal/logging"
	"github.com/hciworks/interaction-core/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to interaction.db")
	session := flag.String("session", "", "show single session detail")
	check := flag.Bool("check", false, "run consistency checks and exit nonzero on failure")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/interaction.db [--session id] [--check] [--json]")
		os.Exit(2)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	tlog := logging.NewTransitionLog(st.DB())

	switch {
	case *check:
		if err := runCheckMode(st, tlog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case *session != "":
		if err := runSessionMode(tlog, *session, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := runListMode(st, tlog, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type streamRow struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Messages  int    `json:"messages"`
	CreatedAt string `json:"created_at"`
}

type sessionRow struct {
	SessionID string `json:"session_id"`
	Turns     int    `json:"turns"`
	FirstAt   string `json:"first_at"`
	LastAt    string `json:"last_at"`
}

func runListMode(st *store.Store, tlog *logging.TransitionLog, jsonOut bool) error {
	streams, err := st.Streams()
	if err != nil {
		return err
	}
	streamRows := make([]streamRow, 0, len(streams))
	for _, s := range streams {
		n, err := st.Count(s.ID)
		if err != nil {
			return err
		}
		streamRows = append(streamRows, streamRow{
			Name:      s.Name,
			Type:      s.Type,
			Messages:  n,
			CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	sessions, err := tlog.Sessions()
	if err != nil {
		return err
	}
	sessionRows := make([]sessionRow, 0, len(sessions))
	for _, s := range sessions {
		sessionRows = append(sessionRows, sessionRow{
			SessionID: s.SessionID,
			Turns:     s.Turns,
			FirstAt:   s.FirstAt.Format("2006-01-02T15:04:05Z"),
			LastAt:    s.LastAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return printJSON(map[string]any{
			"streams":  streamRows,
			"sessions": sessionRows,
		})
	}

	fmt.Printf("%-28s  %-12s  %8s  %s\n", "Stream", "Type", "Messages", "Created")
	for _, r := range streamRows {
		fmt.Printf("%-28s  %-12s  %8d  %s\n", r.Name, r.Type, r.Messages, r.CreatedAt)
	}
	if len(streamRows) == 0 {
		fmt.Println("(no streams)")
	}

	fmt.Printf("\n%-38s  %6s  %-20s  %s\n", "Session", "Turns", "First", "Last")
	for _, r := range sessionRows {
		fmt.Printf("%-38s  %6d  %-20s  %s\n", r.SessionID, r.Turns, r.FirstAt, r.LastAt)
	}
	if len(sessionRows) == 0 {
		fmt.Println("(no sessions)")
	}
	return nil
}

// #endregion list-mode

// #region session-mode

type transitionRow struct {
	Turn      int    `json:"turn"`
	FromState string `json:"from_state"`
	ToState   string `json:"to_state"`
	EventKind string `json:"event_kind,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
	CreatedAt string `json:"created_at"`
}

func runSessionMode(tlog *logging.TransitionLog, sessionID string, jsonOut bool) error {
	trs, err := tlog.ListTransitions(sessionID)
	if err != nil {
		return err
	}
	if len(trs) == 0 {
		fmt.Fprintln(os.Stderr, "no transitions found")
		return nil
	}

	rows := make([]transitionRow, len(trs))
	for i, tr := range trs {
		rows[i] = transitionRow{
			Turn:      tr.Turn,
			FromState: tr.FromState,
			ToState:   tr.ToState,
			EventKind: tr.EventKind,
			Prompt:    tr.Prompt,
			CreatedAt: tr.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%4s  %-16s  %-16s  %-16s  %s\n", "Turn", "From", "To", "Event", "Time")
	for _, r := range rows {
		fmt.Printf("%4d  %-16s  %-16s  %-16s  %s\n", r.Turn, r.FromState, r.ToState, r.EventKind, r.CreatedAt)
		if r.Prompt != "" {
			fmt.Printf("      prompt: %q\n", r.Prompt)
		}
	}
	return nil
}

// #endregion session-mode

// #region check-mode

// runCheckMode validates recorded sessions: turn numbers must be
// contiguous from 1, and each turn's from-state must equal the previous
// turn's to-state.
func runCheckMode(st *store.Store, tlog *logging.TransitionLog) error {
	sessions, err := tlog.Sessions()
	if err != nil {
		return err
	}

	problems := 0
	for _, s := range sessions {
		trs, err := tlog.ListTransitions(s.SessionID)
		if err != nil {
			return err
		}
		problems += checkSession(s.SessionID, trs)
	}

	streams, err := st.Streams()
	if err != nil {
		return err
	}
	fmt.Printf("checked %d sessions, %d streams\n", len(sessions), len(streams))
	if problems > 0 {
		return fmt.Errorf("%d consistency problems", problems)
	}
	fmt.Println("OK")
	return nil
}

func checkSession(sessionID string, trs []dialog.Transition) int {
	problems := 0
	for i, tr := range trs {
		if tr.Turn != i+1 {
			fmt.Printf("FAIL %s: turn %d recorded as %d (gap or duplicate)\n", sessionID, i+1, tr.Turn)
			problems++
		}
		if i > 0 && tr.FromState != trs[i-1].ToState {
			fmt.Printf("FAIL %s turn %d: from %q but previous turn ended in %q\n",
				sessionID, tr.Turn, tr.FromState, trs[i-1].ToState)
			problems++
		}
	}
	return problems
}

// #endregion check-mode

// #region helpers

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
