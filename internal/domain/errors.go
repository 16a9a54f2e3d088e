package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound entity absent, or present but not owned by the caller
	ErrNotFound = errors.New("not found")
	// ErrValidation input rejected before reaching the store
	ErrValidation = errors.New("validation failed")
)

// NotFoundError names the entity that could not be resolved for the caller.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound returns a *NotFoundError for entity
func NewNotFound(entity string) error { return &NotFoundError{Entity: entity} }

// ValidationError a single field problem
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by Validate methods; it unwraps to ErrValidation
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() error { return ErrValidation }

// Field returns the message recorded for field, or ""
func (v ValidationErrors) Field(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// OrNil converts an empty list into a nil error
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func asValidation(err error, out *ValidationErrors) bool {
	return errors.As(err, out)
}
