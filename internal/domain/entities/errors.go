package entities

import "errors"

// Common errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrLabelNotFound = errors.New("label not found")
	ErrDuplicateName = errors.New("label name already exists")
)

// ErrorType tags an OperationError with its machine-readable category.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeDuplicate  ErrorType = "DUPLICATE_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeServer     ErrorType = "SERVER_ERROR"
	ErrorTypeParameter  ErrorType = "PARAMETER_ERROR"
)

// OperationError is the error contract every service operation reports
// through. Details carries field-level validation failures when present.
type OperationError struct {
	Type    ErrorType
	Message string
	Details map[string]string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a client-fixable input error with a field map.
func NewValidationError(message string, details map[string]string) *OperationError {
	return &OperationError{Type: ErrorTypeValidation, Message: message, Details: details}
}

// NewDuplicateError builds a uniqueness-conflict error.
func NewDuplicateError(message string) *OperationError {
	return &OperationError{Type: ErrorTypeDuplicate, Message: message}
}

// NewNotFoundError builds a missing-entity error.
func NewNotFoundError(message string) *OperationError {
	return &OperationError{Type: ErrorTypeNotFound, Message: message}
}

// NewParameterError builds a malformed-query-parameter error.
func NewParameterError(message string) *OperationError {
	return &OperationError{Type: ErrorTypeParameter, Message: message}
}

// NewServerError wraps an infrastructure failure. The raw cause is kept for
// server-side logging only; Message is what clients see.
func NewServerError(message string, err error) *OperationError {
	return &OperationError{Type: ErrorTypeServer, Message: message, Err: err}
}

// AsOperationError extracts an OperationError from err's chain, if any.
func AsOperationError(err error) (*OperationError, bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}
