package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hciworks/interaction-core/internal/logging"
	"github.com/hciworks/interaction-core/internal/replay"
	"github.com/hciworks/interaction-core/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to interaction.db")
	session := flag.String("session", "", "session to export (default: most recent)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--session id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *session, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run exports one recorded session as a replay fixture. The expected
// transition list and the script timing are reconstructed from the
// transition log; the state graph section is a skeleton to be completed by
// hand, since the log records names and events but not graph structure.
func run(dbPath, session, outPath string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	tlog := logging.NewTransitionLog(st.DB())

	if session == "" {
		sessions, err := tlog.Sessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no sessions recorded")
		}
		session = sessions[0].SessionID
	}

	trs, err := tlog.ListTransitions(session)
	if err != nil {
		return err
	}
	if len(trs) == 0 {
		return fmt.Errorf("session %s has no transitions", session)
	}

	f := replay.Fixture{
		Description: fmt.Sprintf("exported from session %s", session),
		Graph: replay.FixtureGraph{
			StartDelayMs: 1000,
			Initial:      trs[0].ToState,
			States: []replay.FixtureState{
				{Name: trs[0].ToState, Kind: "multiple_choice", Prompt: trs[0].Prompt},
			},
		},
	}

	// Script ticks at the recorded transition offsets, padded with one
	// tick past the end so terminal behavior is exercised.
	base := trs[0].CreatedAt
	for _, tr := range trs {
		f.Script = append(f.Script, replay.FixtureStep{
			AtMs: tr.CreatedAt.Sub(base).Milliseconds() + f.Graph.StartDelayMs + 500,
		})
		f.Expected = append(f.Expected, replay.FixtureTransition{
			From:  tr.FromState,
			To:    tr.ToState,
			Event: tr.EventKind,
		})
	}
	last := f.Script[len(f.Script)-1].AtMs
	f.Script = append(f.Script, replay.FixtureStep{AtMs: last + 500})

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d transitions from session %s to %s\n", len(trs), session, outPath)
	fmt.Println("note: complete the graph section by hand; the log records state names, not structure")
	return nil
}

// #endregion export
