package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDay is returned when no day is registered under a number.
	ErrUnknownDay = errors.New("unknown day")
	// ErrUnknownPart is returned for a part other than 1 or 2.
	ErrUnknownPart = errors.New("unknown part")
	// ErrNoSolution means a search finished without finding an answer.
	ErrNoSolution = errors.New("no solution")
	// ErrMalformedInput wraps every parse failure.
	ErrMalformedInput = errors.New("malformed input")
)

// Malformed builds an ErrMalformedInput for a 1-based input line.
func Malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, line, fmt.Sprintf(format, args...))
}
