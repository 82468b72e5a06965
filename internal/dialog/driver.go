package dialog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// #region errors

// ErrNoActions reports a state that yielded no ContinueWith: a
// no-transition deadlock, which must not occur by construction.
var ErrNoActions = errors.New("state yielded no transition action")

// #endregion errors

// #region synthesizer

// Synthesizer speaks a system prompt. The speech synthesis subsystem is an
// external collaborator; a nil Synthesizer disables speech.
type Synthesizer interface {
	Speak(prompt string, responses []string)
}

// #endregion synthesizer

// #region step-result

// StepResult reports one driver step.
type StepResult struct {
	FromState    string
	ToState      string
	EventKind    string // "" when no event was detected
	Transitioned bool
	Prompt       string // prompt synthesized this step, "" if none
	Suppressed   bool
}

// #endregion step-result

// #region driver

// Driver is the tick loop that owns the active state. Each step is a pure
// computation over an immutable model snapshot; the active-state pointer is
// owned and mutated by the single driving goroutine only, so no locking is
// required.
type Driver[M any] struct {
	sessionID string
	current   State[M]
	synth     Synthesizer
	sink      TransitionSink
	turn      int
}

// NewDriver creates a driver with initial as the active state. synth and
// sink may be nil.
func NewDriver[M any](initial State[M], synth Synthesizer, sink TransitionSink) *Driver[M] {
	return &Driver[M]{
		sessionID: uuid.New().String(),
		current:   initial,
		synth:     synth,
		sink:      sink,
	}
}

// SessionID returns the driver's session identifier.
func (d *Driver[M]) SessionID() string { return d.sessionID }

// Current returns the active state.
func (d *Driver[M]) Current() State[M] { return d.current }

// Turn returns the number of transitions applied so far.
func (d *Driver[M]) Turn() int { return d.turn }

// #endregion driver

// #region step

// Step runs one tick: detect an event on the current state, ask it for
// transition actions, and apply the first ContinueWith. Prompts of the
// entered state are synthesized unless the action suppressed speech.
func (d *Driver[M]) Step(model M) (StepResult, error) {
	event := d.current.DetectEvent(model)
	actions := d.current.NextActions(event, model)

	var cw *ContinueWith[M]
	for _, a := range actions {
		if c, ok := a.(ContinueWith[M]); ok {
			cw = &c
			break
		}
	}
	if cw == nil {
		return StepResult{}, fmt.Errorf("state %q: %w", d.current.Name(), ErrNoActions)
	}

	result := StepResult{
		FromState:  d.current.Name(),
		ToState:    cw.Next.Name(),
		Suppressed: cw.SuppressSpeech,
	}
	if event != nil {
		result.EventKind = event.Kind()
	}
	result.Transitioned = cw.Next != d.current

	if !cw.SuppressSpeech {
		prompt, responses := cw.Next.PromptAndResponseSet(model)
		if prompt != "" {
			result.Prompt = prompt
			if d.synth != nil {
				d.synth.Speak(prompt, responses)
			}
		}
	}

	if result.Transitioned {
		d.turn++
		log.Printf("[DIALOG] session=%s turn=%d %s → %s event=%s",
			d.sessionID, d.turn, result.FromState, result.ToState, result.EventKind)
		if d.sink != nil {
			tr := Transition{
				SessionID:  d.sessionID,
				Turn:       d.turn,
				FromState:  result.FromState,
				ToState:    result.ToState,
				EventKind:  result.EventKind,
				Prompt:     result.Prompt,
				Suppressed: cw.SuppressSpeech,
				CreatedAt:  time.Now().UTC(),
			}
			if err := d.sink.SaveTransition(tr); err != nil {
				log.Printf("[DIALOG] failed to record transition: %v", err)
			}
		}
	}

	d.current = cw.Next
	return result, nil
}

// #endregion step

// #region run

// Run steps the machine at the given cadence until the context is
// cancelled or a step fails. snapshot must return a fresh immutable model
// snapshot per tick.
func (d *Driver[M]) Run(ctx context.Context, interval time.Duration, snapshot func() M) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.Step(snapshot()); err != nil {
				return err
			}
		}
	}
}

// #endregion run
