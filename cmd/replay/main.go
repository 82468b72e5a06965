package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hciworks/interaction-core/internal/replay"
)

// #region main

func main() {
	jsonOut := flag.Bool("json", false, "output summaries as JSON instead of text")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [--json] fixture.json [fixture.json ...]")
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		if !runOne(path, *jsonOut) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d fixtures failed\n", failed, flag.NArg())
		os.Exit(1)
	}
}

// #endregion main

// #region run

type fixtureReport struct {
	Fixture     string   `json:"fixture"`
	Description string   `json:"description"`
	TotalSteps  int      `json:"total_steps"`
	Transitions int      `json:"transitions"`
	FinalState  string   `json:"final_state"`
	Passed      bool     `json:"passed"`
	Mismatches  []string `json:"mismatches,omitempty"`
}

func runOne(path string, jsonOut bool) bool {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return false
	}

	res, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: replay %s: %v\n", path, err)
		return false
	}

	sum := replay.Summarize(f, res)
	report := fixtureReport{
		Fixture:     path,
		Description: f.Description,
		TotalSteps:  sum.TotalSteps,
		Transitions: sum.Transitions,
		FinalState:  sum.FinalState,
		Passed:      sum.Passed,
		Mismatches:  sum.Mismatches,
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "error: encode report: %v\n", err)
			return false
		}
		return sum.Passed
	}

	status := "PASS"
	if !sum.Passed {
		status = "FAIL"
	}
	fmt.Printf("%s  %s\n", status, path)
	if f.Description != "" {
		fmt.Printf("      %s\n", f.Description)
	}
	fmt.Printf("      steps=%d transitions=%d final=%s\n",
		sum.TotalSteps, sum.Transitions, sum.FinalState)
	for _, tr := range res.Transitions {
		fmt.Printf("      %s -> %s  event=%s\n", tr.FromState, tr.ToState, tr.EventKind)
	}
	for _, m := range sum.Mismatches {
		fmt.Printf("      mismatch: %s\n", m)
	}
	return sum.Passed
}

// #endregion run
