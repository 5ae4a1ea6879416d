package models

import "fmt"

// ErrorKind classifies service failures so controllers can map them to HTTP
// statuses in one place.
type ErrorKind string

const (
	ErrValidation  ErrorKind = "VALIDATION_ERROR"
	ErrAuth        ErrorKind = "AUTH_ERROR"
	ErrForbidden   ErrorKind = "FORBIDDEN"
	ErrNotFound    ErrorKind = "NOT_FOUND"
	ErrPersistence ErrorKind = "PERSISTENCE_ERROR"
)

// ServiceError is the error type every service returns
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{Kind: ErrValidation, Message: message}
}

func NewForbiddenError(message string) *ServiceError {
	return &ServiceError{Kind: ErrForbidden, Message: message}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: ErrNotFound, Message: message}
}

func NewPersistenceError(message string, err error) *ServiceError {
	return &ServiceError{Kind: ErrPersistence, Message: message, Err: err}
}
