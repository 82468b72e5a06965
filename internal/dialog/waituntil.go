package dialog

// #region event

// conditionMet is the private sentinel WaitUntil emits once its predicate
// holds.
type conditionMet struct{}

func (conditionMet) Kind() string { return "condition_met" }

// #endregion event

// #region wait-until

// WaitUntil is a predicate-gated guard state: it waits silently until
// pred(model) is true, then hands off to the next state. The predicate must
// be pure over the model snapshot.
type WaitUntil[M any] struct {
	name string
	pred func(M) bool
	next State[M]
}

// NewWaitUntil creates a guard state named name that transitions to next
// once pred holds.
func NewWaitUntil[M any](name string, pred func(M) bool, next State[M]) *WaitUntil[M] {
	return &WaitUntil[M]{name: name, pred: pred, next: next}
}

// Name implements State.
func (s *WaitUntil[M]) Name() string { return s.name }

// PromptAndResponseSet implements State.
func (s *WaitUntil[M]) PromptAndResponseSet(model M) (string, []string) {
	return "", nil
}

// DetectEvent implements State.
func (s *WaitUntil[M]) DetectEvent(model M) InputEvent {
	if s.pred(model) {
		return conditionMet{}
	}
	return nil
}

// NextActions implements State.
func (s *WaitUntil[M]) NextActions(event InputEvent, model M) []Action[M] {
	if _, ok := event.(conditionMet); ok {
		return []Action[M]{ContinueWith[M]{Next: s.next}}
	}
	return []Action[M]{ContinueWith[M]{Next: s, SuppressSpeech: true}}
}

// #endregion wait-until

// #region terminal

// Terminal is an end state: no prompt, no events, loops to itself forever
// with speech suppressed.
type Terminal[M any] struct {
	name string
}

// NewTerminal creates a terminal state named name.
func NewTerminal[M any](name string) *Terminal[M] {
	return &Terminal[M]{name: name}
}

// Name implements State.
func (s *Terminal[M]) Name() string { return s.name }

// PromptAndResponseSet implements State.
func (s *Terminal[M]) PromptAndResponseSet(model M) (string, []string) { return "", nil }

// DetectEvent implements State.
func (s *Terminal[M]) DetectEvent(model M) InputEvent { return nil }

// NextActions implements State.
func (s *Terminal[M]) NextActions(event InputEvent, model M) []Action[M] {
	return []Action[M]{ContinueWith[M]{Next: s, SuppressSpeech: true}}
}

// #endregion terminal
