package replay

import (
	"fmt"
	"time"

	"github.com/hciworks/interaction-core/internal/dialog"
)

// #region types
// Snapshot is the scripted dialog model: the latest recognized utterance
// and the time it was recognized. It implements dialog.SpeechSource.
type Snapshot struct {
	Utterance string
	At        time.Time
}

// LastUtterance implements dialog.SpeechSource.
func (s Snapshot) LastUtterance() (string, time.Time) { return s.Utterance, s.At }

// StepRecord captures one scripted tick and its outcome.
type StepRecord struct {
	AtMs   int64
	Result dialog.StepResult
}

// Result captures the outcome of replaying one fixture.
type Result struct {
	Steps       []StepRecord
	Transitions []dialog.StepResult
	FinalState  string
}

// Summary provides aggregate stats and expectation checks for a replay run.
type Summary struct {
	TotalSteps  int
	Transitions int
	FinalState  string
	Passed      bool
	Mismatches  []string
}

// #endregion types

// #region replay
// Replay runs a fixture's script against its state graph on a scripted
// clock. Operates entirely in-memory and deterministically: the wall clock
// is never consulted.
func Replay(f *Fixture) (*Result, error) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := base
	now := func() time.Time { return clock }

	start, err := BuildGraph(f.Graph, now)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	driver := dialog.NewDriver[Snapshot](start, nil, nil)

	res := &Result{}
	for i, step := range f.Script {
		if i > 0 && step.AtMs < f.Script[i-1].AtMs {
			return nil, fmt.Errorf("script step %d: time going backwards", i)
		}
		clock = base.Add(time.Duration(step.AtMs) * time.Millisecond)

		var model Snapshot
		if step.Utterance != "" {
			model = Snapshot{Utterance: step.Utterance, At: clock}
		}

		sr, err := driver.Step(model)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i, err)
		}
		res.Steps = append(res.Steps, StepRecord{AtMs: step.AtMs, Result: sr})
		if sr.Transitioned {
			res.Transitions = append(res.Transitions, sr)
		}
	}

	res.FinalState = driver.Current().Name()
	return res, nil
}

// Summarize computes aggregate stats and checks the observed transitions
// against the fixture's expectations, in order.
func Summarize(f *Fixture, res *Result) Summary {
	s := Summary{
		TotalSteps:  len(res.Steps),
		Transitions: len(res.Transitions),
		FinalState:  res.FinalState,
	}

	for i, want := range f.Expected {
		if i >= len(res.Transitions) {
			s.Mismatches = append(s.Mismatches,
				fmt.Sprintf("expected transition %d (%s -> %s) never happened", i, want.From, want.To))
			continue
		}
		got := res.Transitions[i]
		if got.FromState != want.From || got.ToState != want.To || got.EventKind != want.Event {
			s.Mismatches = append(s.Mismatches,
				fmt.Sprintf("transition %d: expected %s -> %s on %s, got %s -> %s on %s",
					i, want.From, want.To, want.Event, got.FromState, got.ToState, got.EventKind))
		}
	}
	for i := len(f.Expected); i < len(res.Transitions); i++ {
		got := res.Transitions[i]
		s.Mismatches = append(s.Mismatches,
			fmt.Sprintf("unexpected transition %d: %s -> %s on %s", i, got.FromState, got.ToState, got.EventKind))
	}

	s.Passed = len(s.Mismatches) == 0
	return s
}

// #endregion replay
