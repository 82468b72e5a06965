package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hciworks/interaction-core/internal/dialog"
	"github.com/hciworks/interaction-core/internal/match"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a dialog
// state graph, a timed script of model snapshots, and the transitions the
// run is expected to produce.
type Fixture struct {
	Description string              `json:"description"`
	Graph       FixtureGraph        `json:"graph"`
	Script      []FixtureStep       `json:"script"`
	Expected    []FixtureTransition `json:"expected"`
}

// FixtureGraph describes the dialog state machine. The machine starts in a
// delayed-start guard that hands off to Initial once StartDelayMs has
// elapsed.
type FixtureGraph struct {
	StartDelayMs int64          `json:"start_delay_ms"`
	Initial      string         `json:"initial"`
	States       []FixtureState `json:"states"`
	Match        *FixtureMatch  `json:"match,omitempty"`
}

// FixtureState describes one named state. Kind is "multiple_choice" or
// "terminal".
type FixtureState struct {
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Prompt  string          `json:"prompt,omitempty"`
	Choices []FixtureChoice `json:"choices,omitempty"`
}

// FixtureChoice pairs an expected response with the name of the next state.
type FixtureChoice struct {
	Response string `json:"response"`
	Next     string `json:"next"`
}

// FixtureMatch mirrors match.Config with JSON tags.
type FixtureMatch struct {
	MinScore     float64 `json:"min_score"`
	ExactScore   float64 `json:"exact_score"`
	PrefixScore  float64 `json:"prefix_score"`
	OverlapBoost float64 `json:"overlap_boost"`
}

// FixtureStep is one scripted tick: the clock is moved to AtMs past the
// run's start and the machine is stepped with Utterance (if any) as the
// latest recognized speech.
type FixtureStep struct {
	AtMs      int64  `json:"at_ms"`
	Utterance string `json:"utterance,omitempty"`
}

// FixtureTransition is one expected state transition, in order.
type FixtureTransition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Event string `json:"event"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToMatchConfig converts a FixtureMatch to a domain match.Config, falling
// back to defaults when absent.
func (fm *FixtureMatch) ToMatchConfig() match.Config {
	if fm == nil {
		return match.DefaultConfig()
	}
	return match.Config{
		MinScore:     fm.MinScore,
		ExactScore:   fm.ExactScore,
		PrefixScore:  fm.PrefixScore,
		OverlapBoost: fm.OverlapBoost,
	}
}

// #endregion fixture-loader

// #region graph-builder

// BuildGraph constructs the dialog state machine a fixture describes,
// wrapped in its delayed-start guard, on the given clock. Choice targets
// must form an acyclic graph over the named states.
func BuildGraph(g FixtureGraph, now func() time.Time) (dialog.State[Snapshot], error) {
	matcher := match.NewMatcher(g.Match.ToMatchConfig())

	byName := make(map[string]FixtureState, len(g.States))
	for _, fs := range g.States {
		if _, dup := byName[fs.Name]; dup {
			return nil, fmt.Errorf("duplicate state %q", fs.Name)
		}
		byName[fs.Name] = fs
	}

	// Dependency-order construction: build a state once every choice
	// target it names is built.
	built := make(map[string]dialog.State[Snapshot], len(g.States))
	for len(built) < len(g.States) {
		progress := false
		for _, fs := range g.States {
			if _, done := built[fs.Name]; done {
				continue
			}
			st, ok, err := buildState(fs, byName, built, matcher, now)
			if err != nil {
				return nil, err
			}
			if ok {
				built[fs.Name] = st
				progress = true
			}
		}
		if !progress {
			return nil, fmt.Errorf("state graph has a cycle or unknown state reference")
		}
	}

	initial, ok := built[g.Initial]
	if !ok {
		return nil, fmt.Errorf("initial state %q not defined", g.Initial)
	}
	delay := time.Duration(g.StartDelayMs) * time.Millisecond
	return dialog.NewDelayedStartWithClock(delay, initial, now), nil
}

func buildState(
	fs FixtureState,
	byName map[string]FixtureState,
	built map[string]dialog.State[Snapshot],
	matcher *match.Matcher,
	now func() time.Time,
) (dialog.State[Snapshot], bool, error) {
	switch fs.Kind {
	case "terminal":
		return dialog.NewTerminal[Snapshot](fs.Name), true, nil
	case "multiple_choice":
		choices := make([]dialog.Choice[Snapshot], 0, len(fs.Choices))
		for _, fc := range fs.Choices {
			if _, known := byName[fc.Next]; !known {
				return nil, false, fmt.Errorf("state %q: unknown next state %q", fs.Name, fc.Next)
			}
			next, done := built[fc.Next]
			if !done {
				return nil, false, nil
			}
			choices = append(choices, dialog.Choice[Snapshot]{Response: fc.Response, Next: next})
		}
		return dialog.NewMultipleChoiceWithClock(fs.Name, fs.Prompt, choices, matcher, now), true, nil
	default:
		return nil, false, fmt.Errorf("state %q: unknown kind %q", fs.Name, fs.Kind)
	}
}

// #endregion graph-builder
