// Package merrors defines the sentinel error kinds produced by the
// training and segmentation engine.
package merrors

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap with fmt.Errorf("...: %w", ErrX) and test with
// errors.Is, mirroring the wrapping style used throughout the teacher's
// analyzer.LoadMorphAnalyzer/loadInternal.
var (
	// ErrInvalidArgument covers an unknown algorithm, a cognate string
	// without the delimiter, or an empty-on-both-sides cognate parse.
	// Invalid split locations are not reported with it: the algebras'
	// Split and SplitN panic on them.
	ErrInvalidArgument = errors.New("morfessor: invalid argument")

	// ErrInvariantViolation marks a construction whose stored count
	// becomes non-positive while still referenced. It is a programming
	// error, not a recoverable condition.
	ErrInvariantViolation = errors.New("morfessor: invariant violation")

	// ErrSegmentOnly is returned when a mutating method is called on a
	// model that has been frozen for inference via MakeSegmentOnly.
	ErrSegmentOnly = errors.New("morfessor: model is segment-only")

	// ErrMissingCompound is returned by Segment when called on a
	// compound that was never loaded.
	ErrMissingCompound = errors.New("morfessor: compound was never loaded")
)

// InvariantError carries the offending construction's string key, per
// spec's requirement that InvariantViolation "include the offending key".
type InvariantError struct {
	Key string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: construction %q", e.Err, e.Key)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// NewInvariantViolation builds an InvariantError wrapping
// ErrInvariantViolation for the given construction key.
func NewInvariantViolation(key string) *InvariantError {
	return &InvariantError{Key: key, Err: ErrInvariantViolation}
}
