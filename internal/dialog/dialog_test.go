package dialog

import (
	"testing"
	"time"

	"github.com/hciworks/interaction-core/internal/match"
)

type testModel struct {
	utterance string
	at        time.Time
}

func (m testModel) LastUtterance() (string, time.Time) { return m.utterance, m.at }

// fakeClock is an adjustable clock for timer-gated states.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func singleContinue(t *testing.T, actions []Action[testModel]) ContinueWith[testModel] {
	t.Helper()
	if len(actions) != 1 {
		t.Fatalf("expected exactly one action, got %d", len(actions))
	}
	cw, ok := actions[0].(ContinueWith[testModel])
	if !ok {
		t.Fatalf("expected ContinueWith, got %T", actions[0])
	}
	return cw
}

func TestDelayedStartWaitsBeforeStartTime(t *testing.T) {
	clock := newFakeClock()
	target := NewTerminal[testModel]("target")
	s := NewDelayedStartWithClock(5*time.Second, State[testModel](target), clock.now)

	if prompt, responses := s.PromptAndResponseSet(testModel{}); prompt != "" || responses != nil {
		t.Fatalf("waiting state must have nothing to prompt, got %q %v", prompt, responses)
	}
	if ev := s.DetectEvent(testModel{}); ev != nil {
		t.Fatalf("expected no event before start time, got %v", ev)
	}

	// Any non-sentinel input, including nil, loops to self with speech
	// suppressed.
	for _, ev := range []InputEvent{nil, ChoiceSelected{Choice: "yes"}} {
		cw := singleContinue(t, s.NextActions(ev, testModel{}))
		if cw.Next != State[testModel](s) {
			t.Fatalf("expected self-loop, got %s", cw.Next.Name())
		}
		if !cw.SuppressSpeech {
			t.Fatal("self-loop must suppress speech")
		}
	}
}

func TestDelayedStartHandsOffAfterDelay(t *testing.T) {
	clock := newFakeClock()
	target := NewTerminal[testModel]("target")
	s := NewDelayedStartWithClock(5*time.Second, State[testModel](target), clock.now)

	clock.advance(6 * time.Second)

	ev := s.DetectEvent(testModel{})
	if ev == nil {
		t.Fatal("expected sentinel after start time")
	}
	if ev.Kind() != "start_elapsed" {
		t.Fatalf("expected start_elapsed, got %s", ev.Kind())
	}

	cw := singleContinue(t, s.NextActions(ev, testModel{}))
	if cw.Next != State[testModel](target) {
		t.Fatalf("expected hand-off to target, got %s", cw.Next.Name())
	}
	if cw.SuppressSpeech {
		t.Fatal("hand-off must not suppress speech")
	}

	// Detection keeps firing on every subsequent tick.
	if ev := s.DetectEvent(testModel{}); ev == nil {
		t.Fatal("detection must be safe to repeat")
	}
}

func TestWaitUntilGatesOnPredicate(t *testing.T) {
	target := NewTerminal[testModel]("target")
	s := NewWaitUntil("wait_for_speech", func(m testModel) bool {
		return m.utterance != ""
	}, State[testModel](target))

	if ev := s.DetectEvent(testModel{}); ev != nil {
		t.Fatalf("expected no event while predicate is false, got %v", ev)
	}
	cw := singleContinue(t, s.NextActions(nil, testModel{}))
	if cw.Next != State[testModel](s) || !cw.SuppressSpeech {
		t.Fatalf("expected suppressed self-loop, got %+v", cw)
	}

	ev := s.DetectEvent(testModel{utterance: "hello"})
	if ev == nil || ev.Kind() != "condition_met" {
		t.Fatalf("expected condition_met, got %v", ev)
	}
	cw = singleContinue(t, s.NextActions(ev, testModel{utterance: "hello"}))
	if cw.Next != State[testModel](target) {
		t.Fatalf("expected hand-off, got %s", cw.Next.Name())
	}
}

func TestTerminalLoopsForever(t *testing.T) {
	s := NewTerminal[testModel]("done")
	if ev := s.DetectEvent(testModel{}); ev != nil {
		t.Fatalf("terminal state detects nothing, got %v", ev)
	}
	cw := singleContinue(t, s.NextActions(nil, testModel{}))
	if cw.Next != State[testModel](s) || !cw.SuppressSpeech {
		t.Fatalf("expected suppressed self-loop, got %+v", cw)
	}
}

func makeChoiceState(clock *fakeClock) (*MultipleChoice[testModel], *Terminal[testModel], *Terminal[testModel]) {
	yes := NewTerminal[testModel]("accepted")
	no := NewTerminal[testModel]("declined")
	s := NewMultipleChoiceWithClock(
		"confirm",
		"Shall we begin?",
		[]Choice[testModel]{
			{Response: "yes", Next: yes},
			{Response: "no", Next: no},
		},
		match.NewMatcher(match.DefaultConfig()),
		clock.now,
	)
	return s, yes, no
}

func TestMultipleChoicePromptAndResponseSet(t *testing.T) {
	clock := newFakeClock()
	s, _, _ := makeChoiceState(clock)

	prompt, responses := s.PromptAndResponseSet(testModel{})
	if prompt != "Shall we begin?" {
		t.Fatalf("unexpected prompt %q", prompt)
	}
	if len(responses) != 2 || responses[0] != "yes" || responses[1] != "no" {
		t.Fatalf("unexpected response set %v", responses)
	}
}

func TestMultipleChoiceDetectsChoice(t *testing.T) {
	clock := newFakeClock()
	s, _, _ := makeChoiceState(clock)

	// Nothing recognized yet.
	if ev := s.DetectEvent(testModel{}); ev != nil {
		t.Fatalf("expected no event, got %v", ev)
	}

	// Utterances recognized before the state existed are ignored.
	stale := testModel{utterance: "yes", at: clock.now().Add(-time.Second)}
	if ev := s.DetectEvent(stale); ev != nil {
		t.Fatalf("expected stale utterance to be ignored, got %v", ev)
	}

	// A fresh matching utterance produces ChoiceSelected.
	fresh := testModel{utterance: "Yes!", at: clock.now().Add(time.Second)}
	ev := s.DetectEvent(fresh)
	sel, ok := ev.(ChoiceSelected)
	if !ok {
		t.Fatalf("expected ChoiceSelected, got %v", ev)
	}
	if sel.Choice != "yes" || sel.Index != 0 {
		t.Fatalf("unexpected selection %+v", sel)
	}

	// An unmatched fresh utterance is a non-event, not an error.
	noise := testModel{utterance: "what is the weather", at: clock.now().Add(time.Second)}
	if ev := s.DetectEvent(noise); ev != nil {
		t.Fatalf("expected no event for unmatched speech, got %v", ev)
	}
}

func TestMultipleChoiceTransitionsPerChoice(t *testing.T) {
	clock := newFakeClock()
	s, yes, no := makeChoiceState(clock)

	cw := singleContinue(t, s.NextActions(ChoiceSelected{Choice: "yes", Index: 0}, testModel{}))
	if cw.Next != State[testModel](yes) {
		t.Fatalf("expected accepted, got %s", cw.Next.Name())
	}

	cw = singleContinue(t, s.NextActions(ChoiceSelected{Choice: "no", Index: 1}, testModel{}))
	if cw.Next != State[testModel](no) {
		t.Fatalf("expected declined, got %s", cw.Next.Name())
	}

	// No event: keep listening without re-speaking.
	cw = singleContinue(t, s.NextActions(nil, testModel{}))
	if cw.Next != State[testModel](s) || !cw.SuppressSpeech {
		t.Fatalf("expected suppressed self-loop, got %+v", cw)
	}
}
