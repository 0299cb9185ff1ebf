package services

import (
	"errors"
	"net/http"
)

// ServiceError carries an HTTP status alongside a caller-facing message.
// Controllers surface it verbatim; anything else becomes a generic 500.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: message}
}

func NewForbiddenError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusForbidden, Message: message}
}

func NewUnauthorizedError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusUnauthorized, Message: message}
}

func NewInternalError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: message}
}

// errRollback aborts a transaction after a ServiceError has been recorded.
var errRollback = errors.New("rollback")
