package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a provider-neutral failure from the unicall core.
type Error struct {
	Type        ErrorType
	Service     Service
	Message     string
	ProviderErr error // Original provider-specific error
}

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeInvalidService ErrorType = "invalid_service"
	ErrorTypeAPICall        ErrorType = "api_call"
	ErrorTypeOverloaded     ErrorType = "overloaded"
	ErrorTypeNotImplemented ErrorType = "not_implemented"
	ErrorTypeNoHandler      ErrorType = "no_handler"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ProviderErr != nil {
		return e.Message + ": " + e.ProviderErr.Error()
	}
	return e.Message
}

// Unwrap returns the underlying provider error.
func (e *Error) Unwrap() error {
	return e.ProviderErr
}

// NewInvalidServiceError creates an error for an unrecognized service name.
func NewInvalidServiceError(name string) *Error {
	return &Error{
		Type:    ErrorTypeInvalidService,
		Message: fmt.Sprintf("'%s' is not a valid service", name),
	}
}

// NewAPICallError creates an error for a provider call that failed or
// produced no usable text.
func NewAPICallError(service Service, message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeAPICall,
		Service:     service,
		Message:     message,
		ProviderErr: providerErr,
	}
}

// NewOverloadedError creates an error for a provider capacity or rate-limit
// signal. Callers can branch on this type to back off and retry.
func NewOverloadedError(service Service, message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeOverloaded,
		Service:     service,
		Message:     message,
		ProviderErr: providerErr,
	}
}

// NewNotImplementedError creates an error for a service that is recognized
// but has no working adapter yet.
func NewNotImplementedError(service Service) *Error {
	return &Error{
		Type:    ErrorTypeNotImplemented,
		Service: service,
		Message: fmt.Sprintf("the service '%s' is recognized but not yet implemented", service),
	}
}

// NewNoHandlerError creates an error for a service with no registered
// adapter at dispatch time.
func NewNoHandlerError(service Service) *Error {
	return &Error{
		Type:    ErrorTypeNoHandler,
		Service: service,
		Message: fmt.Sprintf("no handler registered for the '%s' service", service),
	}
}

// IsInvalidServiceError checks if an error is an invalid service error.
func IsInvalidServiceError(err error) bool {
	return hasType(err, ErrorTypeInvalidService)
}

// IsAPICallError checks if an error is an API call error.
func IsAPICallError(err error) bool {
	return hasType(err, ErrorTypeAPICall)
}

// IsOverloadedError checks if an error is an overload error.
func IsOverloadedError(err error) bool {
	return hasType(err, ErrorTypeOverloaded)
}

// IsNotImplementedError checks if an error is a not implemented error.
func IsNotImplementedError(err error) bool {
	return hasType(err, ErrorTypeNotImplemented)
}

// IsNoHandlerError checks if an error is a missing handler error.
func IsNoHandlerError(err error) bool {
	return hasType(err, ErrorTypeNoHandler)
}

func hasType(err error, t ErrorType) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == t
	}
	return false
}

// WrapProviderError classifies a raw adapter failure into the taxonomy.
// Errors already typed by an adapter (structured overload signals, empty
// content, not implemented) pass through unchanged. Anything else is
// classified by the single overload heuristic, a case-insensitive
// "overloaded" substring match, and otherwise wrapped as an API call error
// with the original error kept as the cause.
func WrapProviderError(service Service, err error) *Error {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr
	}
	if strings.Contains(strings.ToLower(err.Error()), "overloaded") {
		return NewOverloadedError(service, err.Error(), err)
	}
	return NewAPICallError(service, err.Error(), err)
}
