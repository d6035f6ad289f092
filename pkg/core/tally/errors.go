package tally

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ballot validation failure
type ErrorKind string

// KindUnknownOption is the only ballot validation failure: an option outside the eligibility set
const KindUnknownOption ErrorKind = "unknown option"

var (
	// ErrUnknownOption matches any *ValidationError of kind KindUnknownOption via errors.Is
	ErrUnknownOption = errors.New("unknown option")

	// ErrEmptyEligibilitySet is returned when no eligible options were supplied
	ErrEmptyEligibilitySet = errors.New("eligibility set is empty")

	// ErrEmptyPointScale is returned when the point scale has no positions
	ErrEmptyPointScale = errors.New("point scale is empty")

	// ErrNegativePoints is returned when a point scale value is below zero
	ErrNegativePoints = errors.New("point scale contains a negative value")
)

// ValidationError reports a ballot entry that failed validation.
// Ballot and Position are 0-indexed.
type ValidationError struct {
	Kind     ErrorKind
	Option   string
	Ballot   int
	Position int
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q in ballot %d at position %d: not in the eligibility set",
		e.Kind, e.Option, e.Ballot+1, e.Position+1)
}

// Is lets errors.Is match a ValidationError against ErrUnknownOption.
func (e *ValidationError) Is(target error) bool {
	return target == ErrUnknownOption && e.Kind == KindUnknownOption
}

func newUnknownOptionError(option string, ballot, position int) *ValidationError {
	return &ValidationError{
		Kind:     KindUnknownOption,
		Option:   option,
		Ballot:   ballot,
		Position: position,
	}
}
