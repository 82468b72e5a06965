package match

// #region config

// Config holds thresholds for utterance matching.
type Config struct {
	MinScore     float64 // matches scoring below this are rejected
	ExactScore   float64 // score assigned to a normalized exact match
	PrefixScore  float64 // score assigned to a prefix/containment match
	OverlapBoost float64 // multiplier applied to the token-overlap tier
}

// DefaultConfig returns sensible matching defaults.
func DefaultConfig() Config {
	return Config{
		MinScore:     0.5,
		ExactScore:   1.0,
		PrefixScore:  0.9,
		OverlapBoost: 1.0,
	}
}

// #endregion config

// #region result

// Result is the outcome of matching an utterance against a response set.
type Result struct {
	Matched bool
	Choice  string  // the matched response, verbatim from the response set
	Index   int     // index of the matched response, -1 when unmatched
	Score   float64 // 0-1 confidence
}

// #endregion result
