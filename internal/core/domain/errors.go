package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation marks malformed or missing input. Nothing has been
	// persisted or stored when it is returned.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a creative or campaign id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraint marks a relational constraint violation, e.g. assigning
	// into a campaign that does not exist.
	ErrConstraint = errors.New("constraint violated")
	// ErrConflict marks a uniqueness violation. It wraps ErrConstraint.
	ErrConflict = fmt.Errorf("%w: already exists", ErrConstraint)
	// ErrObjectNotFound marks a storage key without an object.
	ErrObjectNotFound = errors.New("object not found")
)

// ValidationError lists the offending fields of a rejected input. Field
// names use the JSON spelling.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StorageError is returned by the object storage gateway when a put, get
// or delete fails. Status is the upstream HTTP status when known.
type StorageError struct {
	Op      string
	Key     string
	Status  int
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("storage %s %q: %d %s", e.Op, e.Key, e.Status, msg)
	}
	return fmt.Sprintf("storage %s %q: %s", e.Op, e.Key, msg)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err denotes a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err denotes rejected input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConstraint reports whether err denotes a constraint violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}
