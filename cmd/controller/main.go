package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hciworks/interaction-core/internal/dialog"
	"github.com/hciworks/interaction-core/internal/logging"
	"github.com/hciworks/interaction-core/internal/match"
	"github.com/hciworks/interaction-core/internal/store"
)

// #region model

// model is the interaction-model snapshot the dialog states see: the latest
// typed utterance standing in for recognized speech.
type model struct {
	utterance string
	at        time.Time
}

func (m model) LastUtterance() (string, time.Time) { return m.utterance, m.at }

// #endregion model

// #region synth

// consoleSynth prints prompts instead of speaking them.
type consoleSynth struct{}

func (consoleSynth) Speak(prompt string, responses []string) {
	fmt.Printf("\n%s\n", prompt)
	if len(responses) > 0 {
		fmt.Printf("  (say: %s)\n", strings.Join(responses, " / "))
	}
}

// #endregion synth

// #region graph

// buildDemoGraph wires the demo conversation: a short delayed start, a
// confirm prompt, then a task choice.
func buildDemoGraph(delay time.Duration) dialog.State[model] {
	matcher := match.NewMatcher(match.DefaultConfig())

	finishedTea := dialog.NewTerminal[model]("making_tea")
	finishedTimer := dialog.NewTerminal[model]("setting_timer")
	declined := dialog.NewTerminal[model]("declined")

	task := dialog.NewMultipleChoice("task",
		"What shall we do?",
		[]dialog.Choice[model]{
			{Response: "make tea", Next: finishedTea},
			{Response: "set a timer", Next: finishedTimer},
		},
		matcher)

	confirm := dialog.NewMultipleChoice("confirm",
		"Shall we begin?",
		[]dialog.Choice[model]{
			{Response: "yes", Next: task},
			{Response: "no", Next: declined},
		},
		matcher)

	return dialog.NewDelayedStart(delay, dialog.State[model](confirm))
}

// #endregion graph

// #region main

func main() {
	dbPath := envOr("INTERACTION_DB", "interaction.db")
	tick := 200 * time.Millisecond

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	sink := logging.NewTransitionLog(st.DB())
	driver := dialog.NewDriver[model](buildDemoGraph(time.Second), consoleSynth{}, sink)

	utterances, err := st.CreateStream("console.utterances", "utterance")
	if err != nil {
		log.Fatalf("failed to create stream: %v", err)
	}

	fmt.Println("Interaction controller ready.")
	fmt.Printf("  DB: %s | session: %s\n", dbPath, driver.SessionID())
	fmt.Println("Type answers when prompted ('quit' to exit):")

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	// Single-owner loop: dialog stepping, speech, and persistence all
	// happen here.
	var snapshot model
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case line, ok := <-lines:
			if !ok || line == "quit" || line == "exit" {
				fmt.Printf("\nSession %s ended after %d turns.\n", driver.SessionID(), driver.Turn())
				return
			}
			if line == "" {
				continue
			}
			snapshot = model{utterance: line, at: time.Now()}
			payload, _ := json.Marshal(map[string]string{"text": line})
			if _, err := st.Append(utterances.ID, snapshot.at, payload); err != nil {
				log.Printf("append utterance: %v", err)
			}
		case <-ticker.C:
		}

		res, err := driver.Step(snapshot)
		if err != nil {
			log.Fatalf("dialog step: %v", err)
		}
		if res.Transitioned {
			// The utterance was consumed; don't let it re-match in the
			// next state.
			snapshot.utterance = ""
		}
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
