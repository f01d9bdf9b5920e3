package ahocorasick

import (
	"errors"
	"fmt"
)

// Sentinel error kinds surfaced by Build. Callers can test for these with
// errors.Is even though Build actually returns a wrapping *BuildError.
var (
	// ErrInvalidPattern indicates an empty pattern was supplied to Build.
	ErrInvalidPattern = errors.New("ahocorasick: invalid pattern")

	// ErrOutOfMemory indicates a buffer allocation failed during conversion.
	ErrOutOfMemory = errors.New("ahocorasick: out of memory")

	// ErrOverflow indicates the packed buffer exceeds the supported offset
	// width even after widening to four-byte offsets.
	ErrOverflow = errors.New("ahocorasick: packed buffer overflow")
)

// BuildError wraps a build failure with the offending pattern, when known.
// Build is all-or-nothing: on any error no Automaton is produced.
type BuildError struct {
	// Pattern is the offending pattern, or nil if the error is not
	// attributable to a single pattern (e.g. ErrOverflow).
	Pattern []byte
	Err     error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Pattern != nil {
		return fmt.Sprintf("ahocorasick: build failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("ahocorasick: build failed: %v", e.Err)
}

// Unwrap returns the underlying sentinel error for errors.Is/errors.As.
func (e *BuildError) Unwrap() error {
	return e.Err
}
