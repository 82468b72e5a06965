// Package match scores recognized user speech against an expected response
// set. Recognition itself is an external collaborator; this package only
// decides which expected response, if any, an utterance corresponds to.
package match

import "strings"

// #region matcher

// Matcher matches utterances against response sets.
type Matcher struct {
	config Config
}

// NewMatcher creates a Matcher with the given configuration.
func NewMatcher(config Config) *Matcher {
	return &Matcher{config: config}
}

// #endregion matcher

// #region match

// Match scores utterance against each response using a 3-tier fallback:
// normalized exact match → prefix/containment → token overlap. The best
// response at or above MinScore wins; earlier responses win ties.
func (m *Matcher) Match(utterance string, responses []string) Result {
	result := Result{Index: -1}
	norm := normalize(utterance)
	if norm == "" || len(responses) == 0 {
		return result
	}

	for i, response := range responses {
		score := m.score(norm, normalize(response))
		if score > result.Score {
			result.Score = score
			result.Index = i
			result.Choice = response
		}
	}

	if result.Score < m.config.MinScore {
		return Result{Index: -1, Score: result.Score}
	}
	result.Matched = true
	return result
}

// score applies the tier fallback for one normalized response.
func (m *Matcher) score(utterance, response string) float64 {
	if response == "" {
		return 0
	}
	// Tier 1: exact
	if utterance == response {
		return m.config.ExactScore
	}
	// Tier 2: containment (covers the prefix case)
	if strings.Contains(utterance, response) {
		return m.config.PrefixScore
	}
	// Tier 3: token overlap
	return clamp(tokenOverlap(tokenize(utterance), tokenize(response)) * m.config.OverlapBoost)
}

// #endregion match

// #region helpers

// normalize lowercases and strips punctuation, collapsing whitespace.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenize splits normalized text into whitespace-delimited tokens.
func tokenize(text string) []string {
	return strings.Fields(text)
}

// tokenOverlap computes |intersection| / min(|utterance|, |response|).
// Dividing by the shorter side keeps a filler-heavy utterance from diluting
// a response it otherwise covers, and vice versa.
func tokenOverlap(utterance, response []string) float64 {
	if len(utterance) == 0 || len(response) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(utterance))
	for _, t := range utterance {
		set[t] = struct{}{}
	}
	hits := 0
	for _, t := range response {
		if _, ok := set[t]; ok {
			hits++
		}
	}
	shorter := len(utterance)
	if len(response) < shorter {
		shorter = len(response)
	}
	return float64(hits) / float64(shorter)
}

// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
