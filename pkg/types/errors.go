package types

import (
	"errors"
	"fmt"
)

// Registry error taxonomy. Callers match with errors.Is; the typed errors
// below unwrap to these sentinels.
var (
	ErrValidation        = errors.New("validation failed")
	ErrLookup            = errors.New("identifier not found")
	ErrIO                = errors.New("i/o failure")
	ErrDuplicateID       = errors.New("duplicate identifier")
	ErrNotOwner          = errors.New("instructor does not own course")
	ErrMalformedDocument = errors.New("malformed document")
)

// ValidationError reports a raw value that failed its field rule.
type ValidationError struct {
	Field  string // Field name, e.g. "student id".
	Value  any    // The rejected value.
	Reason string // Human-readable rule description.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LookupError reports an identifier that has no entity in the expected index.
type LookupError struct {
	Kind    Kind   // Kind of entity that was looked up.
	ID      string // The missing identifier.
	Context string // Where the reference came from, e.g. "course CSE101".
}

func (e *LookupError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s %q referenced by %s not found", e.Kind, e.ID, e.Context)
}

// Is lets errors.Is(err, ErrLookup) match any *LookupError.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// newValidationError builds a *ValidationError.
func newValidationError(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
