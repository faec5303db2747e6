package sorting

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned for algorithm names nobody knows
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnsupportedAlgorithm is returned when a known algorithm has no stepper
	ErrUnsupportedAlgorithm = errors.New("algorithm not implemented")

	// ErrUnknownArrangement is returned for unknown initial-array strategies
	ErrUnknownArrangement = errors.New("unknown arrangement")

	// ErrInvalidConfig is returned for run settings that cannot start a run
	ErrInvalidConfig = errors.New("invalid run configuration")
)

// InvariantError reports a programming-logic failure detected during a tick.
// The run that produced it must be aborted.
type InvariantError struct {
	Op     string
	Index  int
	Length int
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("invariant violated in %s: index %d out of range [0, %d)", e.Op, e.Index, e.Length)
}

// IsInvariant reports whether err carries an InvariantError
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

func outOfRange(op string, index, length int) error {
	return &InvariantError{Op: op, Index: index, Length: length}
}
