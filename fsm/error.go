package fsm

import (
	"errors"
	"fmt"
)

// Malformed-pattern conditions. All of them are fatal to the compilation
// attempt; no partial Machine is returned.
var (
	// ErrEmptyPattern indicates an empty pattern string.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrUnterminatedClass indicates a bracket expression with no closing ']'.
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrDanglingQuantifier indicates a '*' or '+' with no preceding base unit.
	ErrDanglingQuantifier = errors.New("quantifier with no preceding unit")

	// ErrNotASCII indicates a pattern byte outside the ASCII range.
	ErrNotASCII = errors.New("pattern is not ASCII")
)

// PatternError wraps a malformed-pattern condition with the offending
// pattern and byte offset.
type PatternError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("fsm: malformed pattern %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying condition.
func (e *PatternError) Unwrap() error {
	return e.Err
}
