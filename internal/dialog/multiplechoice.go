package dialog

import (
	"time"

	"github.com/hciworks/interaction-core/internal/match"
)

// #region event

// ChoiceSelected is the event MultipleChoice emits when a recognized
// utterance matches one of its expected responses.
type ChoiceSelected struct {
	Choice     string
	Index      int
	Confidence float64
}

// Kind implements InputEvent.
func (ChoiceSelected) Kind() string { return "choice_selected" }

// #endregion event

// #region choice

// Choice pairs an expected user response with the state to hand off to when
// the user gives it.
type Choice[M SpeechSource] struct {
	Response string
	Next     State[M]
}

// #endregion choice

// #region multiple-choice

// MultipleChoice is a prompting state: it offers a fixed prompt and
// response set, matches recognized speech against the responses, and hands
// off to the matched choice's next state. Only utterances recognized after
// the state was constructed count, so re-detection on every tick is safe.
type MultipleChoice[M SpeechSource] struct {
	name    string
	prompt  string
	choices []Choice[M]
	matcher *match.Matcher
	since   time.Time
}

// NewMultipleChoice creates a prompting state named name.
func NewMultipleChoice[M SpeechSource](name, prompt string, choices []Choice[M], matcher *match.Matcher) *MultipleChoice[M] {
	return NewMultipleChoiceWithClock(name, prompt, choices, matcher, time.Now)
}

// NewMultipleChoiceWithClock creates a MultipleChoice with an injected
// clock, for deterministic tests and replay.
func NewMultipleChoiceWithClock[M SpeechSource](name, prompt string, choices []Choice[M], matcher *match.Matcher, now func() time.Time) *MultipleChoice[M] {
	return &MultipleChoice[M]{
		name:    name,
		prompt:  prompt,
		choices: choices,
		matcher: matcher,
		since:   now(),
	}
}

// Name implements State.
func (s *MultipleChoice[M]) Name() string { return s.name }

// PromptAndResponseSet implements State.
func (s *MultipleChoice[M]) PromptAndResponseSet(model M) (string, []string) {
	responses := make([]string, len(s.choices))
	for i, c := range s.choices {
		responses[i] = c.Response
	}
	return s.prompt, responses
}

// DetectEvent implements State: matches the latest recognized utterance,
// ignoring anything recognized before this state existed.
func (s *MultipleChoice[M]) DetectEvent(model M) InputEvent {
	text, at := model.LastUtterance()
	if at.IsZero() || !at.After(s.since) {
		return nil
	}
	responses := make([]string, len(s.choices))
	for i, c := range s.choices {
		responses[i] = c.Response
	}
	result := s.matcher.Match(text, responses)
	if !result.Matched {
		return nil
	}
	return ChoiceSelected{Choice: result.Choice, Index: result.Index, Confidence: result.Score}
}

// NextActions implements State: on a selected choice, hand off to its next
// state; otherwise keep listening without re-speaking the prompt.
func (s *MultipleChoice[M]) NextActions(event InputEvent, model M) []Action[M] {
	if sel, ok := event.(ChoiceSelected); ok && sel.Index >= 0 && sel.Index < len(s.choices) {
		return []Action[M]{ContinueWith[M]{Next: s.choices[sel.Index].Next}}
	}
	return []Action[M]{ContinueWith[M]{Next: s, SuppressSpeech: true}}
}

// #endregion multiple-choice
