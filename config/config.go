// Package config holds the tunable options the core engine recognizes
// (spec §6's configuration table), independent of how a driver gathers
// them (flags, environment, file).
package config

// Config collects every option spec §6 lists for the core.
type Config struct {
	// CorpusWeight scales the corpus code length; nil means 1.0.
	CorpusWeight *float64
	// Algorithm is one of "recursive", "viterbi", "flatten".
	Algorithm string
	// FinishThreshold is the stopping slack per compound boundary.
	FinishThreshold float64
	// MaxEpochs caps training epochs; nil means unbounded.
	MaxEpochs *int
	// AddCount is the Viterbi additive-smoothing constant.
	AddCount float64
	// MaxLen is the Viterbi maximum segment length.
	MaxLen int
	// EditWeight scales the cognate edit sub-cost; unused by Baseline.
	EditWeight float64
}

// Default returns the configuration spec §6 describes as the
// out-of-the-box behavior: recursive splitting, corpus weight 1.0,
// unbounded epochs, addcount 1.0, maxlen 30, edit weight 1.0.
func Default() Config {
	return Config{
		Algorithm:       "recursive",
		FinishThreshold: 0.005,
		AddCount:        1.0,
		MaxLen:          30,
		EditWeight:      1.0,
	}
}
