package errors

import (
	"errors"
	"fmt"
)

var (
	// Generic
	ErrNotFound       = errors.New("record not found")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("concurrent modification detected, retry the request")
	ErrInternalServer = errors.New("internal server error")

	// Auth
	ErrEmptyAuthHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthHeader = errors.New("authorization header is malformed")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token has expired")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrWrongCredentials  = errors.New("invalid email or password")

	// Context
	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")

	// Reference data
	ErrStatusInUse = errors.New("status is referenced by existing orders")
)

// Lifecycle errors. The transition engine returns these so callers can map
// each failure kind to a distinct HTTP status and user message.
var (
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrRoleNotAllowed    = errors.New("actor role is not allowed for this transition")
)

// PreconditionError reports a named business rule that blocked a transition.
type PreconditionError struct {
	Rule    string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition %q failed: %s", e.Rule, e.Message)
}

func NewPreconditionError(rule, format string, args ...interface{}) error {
	return &PreconditionError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// InvalidInputError carries a user-facing validation message.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError pairs a user-facing message with an HTTP status code. The wrapped
// internal error and details are for logs only and never leak to the client.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
