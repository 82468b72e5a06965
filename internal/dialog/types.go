// Package dialog provides a pluggable finite-state-machine abstraction for
// turn-based interaction. States are immutable value-like descriptors: given
// an interaction-model snapshot they decide a system prompt and expected
// response set, interpret incoming signals as typed input events, and yield
// transition actions. All transition decisions derive purely from
// (currentState, modelSnapshot, inputEvent); states hold no mutable fields
// beyond configuration.
package dialog

import "time"

// #region input-event

// InputEvent is a typed, detected input signal. Each state that recognizes
// an event defines its own variant.
type InputEvent interface {
	// Kind returns a short label for transcripts and replay traces.
	Kind() string
}

// #endregion input-event

// #region state

// State is one state in the conversation graph, parametrized by the
// interaction-model snapshot type M.
//
// All three methods must be pure: no side effects, safe to call every tick.
// Detection failure is modeled as a nil event, never as an error.
type State[M any] interface {
	// Name identifies the state in logs, transcripts, and replay traces.
	Name() string

	// PromptAndResponseSet returns the system prompt and the expected user
	// responses for this state. An empty prompt with nil responses means
	// there is nothing to prompt (e.g. a waiting state).
	PromptAndResponseSet(model M) (prompt string, responses []string)

	// DetectEvent inspects the latest model snapshot and returns a detected
	// event, or nil if nothing relevant happened yet.
	DetectEvent(model M) InputEvent

	// NextActions yields one or more transition directives for the detected
	// event. A nil event means "no event, re-evaluate self". Every state
	// must yield at least one ContinueWith; yielding nothing is a logic
	// defect (a no-transition deadlock), not a recoverable condition.
	NextActions(event InputEvent, model M) []Action[M]
}

// #endregion state

// #region action

// Action is a transition directive produced by a state. Actions are
// constructed fresh per step, consumed immediately by the driver, and
// discarded.
type Action[M any] interface {
	action()
}

// ContinueWith directs the driver to make Next the active state. When
// SuppressSpeech is set the driver does not synthesize the next state's
// prompt (used by waiting states looping to themselves, which have no
// prompt to give).
type ContinueWith[M any] struct {
	Next           State[M]
	SuppressSpeech bool
}

func (ContinueWith[M]) action() {}

// #endregion action

// #region speech-source

// SpeechSource is the narrow accessor a model snapshot implements to expose
// recognized user speech to prompting states. The speech recognition
// subsystem itself is an external collaborator.
type SpeechSource interface {
	// LastUtterance returns the most recently recognized utterance and the
	// time it was recognized. A zero time means nothing was recognized yet.
	LastUtterance() (text string, at time.Time)
}

// #endregion speech-source

// #region transition

// Transition records one applied state change for transcripts and
// provenance logging.
type Transition struct {
	SessionID  string
	Turn       int
	FromState  string
	ToState    string
	EventKind  string // "" when the step was event-less
	Prompt     string // prompt synthesized on entry, "" if none
	Suppressed bool
	CreatedAt  time.Time
}

// TransitionSink receives applied transitions. Implemented by the
// provenance log; a nil sink disables recording.
type TransitionSink interface {
	SaveTransition(tr Transition) error
}

// #endregion transition
