package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for authentication failures (bad token, no credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the user lacks the rights for an action.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned for invalid input data.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned for state conflicts (e.g. re-attaching answers
	// to a question that already has an option set).
	ErrConflict = errors.New("resource state conflict")

	// ErrPartialWrite is returned when a multi-step write failed after the
	// first step succeeded, leaving a detectable inconsistency: a question
	// row exists but its answer options were never linked.
	ErrPartialWrite = errors.New("partial write: record created but dependent records missing")
)

// FieldError is a single validation failure attached to a named field.
// For indexed collections the field uses a dotted path, e.g. "options.2.answer".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field-level validation failures. The zero value
// is ready to use; a nil *ValidationErrors means the payload is valid.
type ValidationErrors struct {
	Fields []FieldError `json:"fields"`
}

// Add appends one field error.
func (v *ValidationErrors) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// Has reports whether an error is recorded for the given field.
func (v *ValidationErrors) Has(field string) bool {
	for _, f := range v.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first message recorded for the given field.
func (v *ValidationErrors) Get(field string) string {
	for _, f := range v.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Empty reports whether no errors were recorded.
func (v *ValidationErrors) Empty() bool {
	return v == nil || len(v.Fields) == 0
}

// AsMap returns field→message, keeping the first message per field.
func (v *ValidationErrors) AsMap() map[string]string {
	m := make(map[string]string, len(v.Fields))
	for _, f := range v.Fields {
		if _, ok := m[f.Field]; !ok {
			m[f.Field] = f.Message
		}
	}
	return m
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if v.Empty() {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold for any ValidationErrors.
func (v *ValidationErrors) Unwrap() error {
	return ErrValidation
}
