package celestial

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind for rejected user or file input.
var ErrInvalidInput = errors.New("celestial: invalid input")

// InputError wraps ErrInvalidInput with the offending field.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func Invalid(field string, value any, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}
