package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource is not in the state required by the operation.
var ErrConflict = errors.New("resource conflict")

// ErrInternal is returned when a failure should not leak details to the caller.
var ErrInternal = errors.New("internal error")

// ErrRetryable marks a failure that left storage unchanged and can be retried safely.
var ErrRetryable = errors.New("operation failed and can be retried")

// ErrFileRejected indicates an uploaded file was refused before any parsing started.
var ErrFileRejected = errors.New("file rejected")

// ErrExtraction indicates the text of a document could not be read at all.
var ErrExtraction = errors.New("text extraction failed")

// AppError carries an HTTP-like status code together with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
