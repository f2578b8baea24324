package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures the way the validation pipeline resolves them
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"    // bad input, no external call made
	ErrorTypeConfiguration ErrorType = "configuration" // missing API key or similar
	ErrorTypeTransport     ErrorType = "transport"     // network or timeout failure
	ErrorTypeExternal      ErrorType = "external"      // provider rejected or returned garbage
	ErrorTypeInternal      ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type      ErrorType `json:"type"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Cause     error     `json:"-"`
	Retryable bool      `json:"retryable"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Error constructors
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:      ErrorTypeValidation,
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

func NewConfigurationError(code, message string) *AppError {
	return &AppError{
		Type:      ErrorTypeConfiguration,
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

// NewTransportError marks network-level failures, which are always worth
// retrying on a later submission.
func NewTransportError(code, message string) *AppError {
	return &AppError{
		Type:      ErrorTypeTransport,
		Code:      code,
		Message:   message,
		Retryable: true,
	}
}

func NewExternalError(code, message string) *AppError {
	return &AppError{
		Type:      ErrorTypeExternal,
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

func NewInternalError(code, message string) *AppError {
	return &AppError{
		Type:      ErrorTypeInternal,
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

// Wrap wraps an error with a message using fmt.Errorf with %w
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsType checks if an error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}
