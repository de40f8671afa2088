package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches any *AppError with the same code, so errors.Is works against
// a freshly constructed error of the wanted kind.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// Empty creates a new AppError for an operation that needed at least one element.
func Empty(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmpty, Message: fmt.Sprintf("%s requires at least one element but the sequence is empty.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// Ambiguous creates a new AppError for an operation that needed exactly one element.
func Ambiguous(operation string) *AppError {
	return &AppError{
		Code: ErrCodeAmbiguous, Message: fmt.Sprintf("%s requires exactly one element but the sequence has more.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// Unbounded creates a new AppError for an operation that cannot finish on an infinite sequence.
func Unbounded(operation string) *AppError {
	return &AppError{
		Code: ErrCodeUnbounded, Message: fmt.Sprintf("%s would never finish on an unbounded sequence.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// ImpurePipeline creates a new AppError for a traversal refused because of side effects.
func ImpurePipeline(operation string) *AppError {
	return &AppError{
		Code: ErrCodeImpure, Message: fmt.Sprintf("%s refuses pipelines with side effects.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsEmpty reports whether err is a SEQUENCE_EMPTY error.
func IsEmpty(err error) bool { return CodeOf(err) == ErrCodeEmpty }

// IsAmbiguous reports whether err is a SEQUENCE_AMBIGUOUS error.
func IsAmbiguous(err error) bool { return CodeOf(err) == ErrCodeAmbiguous }
