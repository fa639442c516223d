package model

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every ValidationError via errors.Is.
var ErrOutOfRange = errors.New("value out of range")

// Field names reported by ValidationError.
const (
	FieldWorkMinutes  = "work_minutes"
	FieldBreakMinutes = "break_minutes"
)

// ValidationError reports a settings value outside its allowed bounds.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
	// Input is set when the raw text could not be parsed as a number.
	Input string
}

func (err *ValidationError) Error() string {
	if err.Input != "" {
		return fmt.Sprintf("%s must be a whole number between %d and %d, got %q", fieldLabel(err.Field), err.Min, err.Max, err.Input)
	}
	bound := "above maximum"
	limit := err.Max
	if err.Value < err.Min {
		bound = "below minimum"
		limit = err.Min
	}
	return fmt.Sprintf("%s must be between %d and %d minutes (%d is %s %d)", fieldLabel(err.Field), err.Min, err.Max, err.Value, bound, limit)
}

// Is makes errors.Is(err, ErrOutOfRange) true.
func (err *ValidationError) Is(target error) bool {
	return target == ErrOutOfRange
}

// BelowMin reports whether the lower bound was violated.
func (err *ValidationError) BelowMin() bool {
	return err.Input == "" && err.Value < err.Min
}

// AboveMax reports whether the upper bound was violated.
func (err *ValidationError) AboveMax() bool {
	return err.Input == "" && err.Value > err.Max
}

func fieldLabel(field string) string {
	switch field {
	case FieldWorkMinutes:
		return "work time"
	case FieldBreakMinutes:
		return "break time"
	default:
		return field
	}
}
