// Package morfessor composes the construction, cost, store, and
// optimizer packages into the two user-facing model types: BaselineModel
// and CognateModel, mirroring the way the teacher's analyzer.MorphAnalyzer
// is the single composed entry point over its own lower-level packages.
package morfessor

import "github.com/rs/zerolog"

// Logger is the single process-wide logger progress events are written
// to. It is disabled by default; callers that want training progress
// visible should call SetLogger with a configured zerolog.Logger.
var Logger = zerolog.Nop()

// SetLogger replaces the package-wide logger.
func SetLogger(l zerolog.Logger) { Logger = l }
