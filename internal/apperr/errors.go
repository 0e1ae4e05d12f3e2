// Package apperr defines the two error kinds the services surface to
// callers: rule violations and missing records. The HTTP layer maps them to
// status codes with errors.As.
package apperr

import "fmt"

// ValidationError carries the exact human-readable message of the first rule
// a record violated. Clients pattern-match on the message, so it is part of
// the contract.
type ValidationError struct {
	Message string
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an update or lookup against an id that has no record.
type NotFoundError struct {
	Kind string
	ID   int64
}

func NewNotFound(kind string, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}
