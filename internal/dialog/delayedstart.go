package dialog

import "time"

// #region event

// startElapsed is the private sentinel DelayedStart emits once its timer
// has run out.
type startElapsed struct{}

func (startElapsed) Kind() string { return "start_elapsed" }

// #endregion event

// #region delayed-start

// DelayedStart is a timer-gated passthrough state: it waits silently until
// a fixed delay after construction has elapsed, then hands off to the start
// state. The pattern generalizes to any "wait until a predicate becomes
// true, then hand off" guard state; see WaitUntil.
type DelayedStart[M any] struct {
	startTime  time.Time
	startState State[M]
	now        func() time.Time
}

// NewDelayedStart creates a guard state that transitions to startState once
// delay has elapsed. startTime is captured at construction and never moves.
func NewDelayedStart[M any](delay time.Duration, startState State[M]) *DelayedStart[M] {
	return NewDelayedStartWithClock(delay, startState, time.Now)
}

// NewDelayedStartWithClock creates a DelayedStart with an injected clock.
// Used for deterministic tests and replay.
func NewDelayedStartWithClock[M any](delay time.Duration, startState State[M], now func() time.Time) *DelayedStart[M] {
	return &DelayedStart[M]{
		startTime:  now().Add(delay),
		startState: startState,
		now:        now,
	}
}

// Name implements State.
func (s *DelayedStart[M]) Name() string { return "delayed_start" }

// PromptAndResponseSet implements State. A waiting state has nothing to
// prompt.
func (s *DelayedStart[M]) PromptAndResponseSet(model M) (string, []string) {
	return "", nil
}

// DetectEvent implements State: the sentinel fires once the delay has
// elapsed, and keeps firing on every subsequent tick.
func (s *DelayedStart[M]) DetectEvent(model M) InputEvent {
	if s.now().After(s.startTime) {
		return startElapsed{}
	}
	return nil
}

// NextActions implements State: on the sentinel, hand off to the start
// state; on anything else (including nil), loop to self with speech
// suppressed.
func (s *DelayedStart[M]) NextActions(event InputEvent, model M) []Action[M] {
	if _, ok := event.(startElapsed); ok {
		return []Action[M]{ContinueWith[M]{Next: s.startState}}
	}
	return []Action[M]{ContinueWith[M]{Next: s, SuppressSpeech: true}}
}

// #endregion delayed-start
