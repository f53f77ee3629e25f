// Package common defines the sentinel errors shared by the repositories,
// services and the HTTP transport. Callers should use errors.Is to match them.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorValidation   = errors.New("validation error")
	ErrorUnauthorized = errors.New("unauthorized")
)

// ValidationError reports missing or malformed caller input. Its message is
// safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrorValidation
}

// NewValidationError formats a ValidationError.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names the entity that could not be resolved. Message, when
// set, replaces the generated text.
type NotFoundError struct {
	Entity  string
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %d no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrorNotFound
}

// NewNotFoundError returns a NotFoundError for the given entity and id.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a uniqueness clash the client can resolve, such as
// an email that is already registered.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrorAlreadyExists
}

// NewConflictError formats a ConflictError.
func NewConflictError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
