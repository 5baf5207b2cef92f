package api

import "fmt"

// ErrorType represents the category of an API client error.
type ErrorType string

const (
	ErrorTypeArgument      ErrorType = "argument"
	ErrorTypeTransport     ErrorType = "transport"
	ErrorTypeSerialization ErrorType = "serialization"
	ErrorTypeResponseShape ErrorType = "response_shape"
	ErrorTypeListener      ErrorType = "listener"
)

// APIError is the single error kind the client exposes. Every failure in
// the call chain (argument validation, transmission, parsing,
// deserialization) is wrapped into an APIError before it crosses the
// client boundary; the originating error is preserved as the cause and
// reachable through errors.Unwrap.
type APIError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the originating error, if any.
func (e *APIError) Unwrap() error { return e.Err }

// NewArgumentError creates an APIError for invalid call arguments,
// detected before any I/O.
func NewArgumentError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeArgument,
		Message: message,
	}
}

// NewTransportError creates an APIError for failures during request
// construction or the network exchange.
func NewTransportError(message string, cause error) *APIError {
	return &APIError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     cause,
	}
}

// NewSerializationError creates an APIError for payload serialization or
// response deserialization failures.
func NewSerializationError(message string, cause error) *APIError {
	return &APIError{
		Type:    ErrorTypeSerialization,
		Message: message,
		Err:     cause,
	}
}

// NewResponseShapeError creates an APIError for response bodies that are
// not the JSON object the wire protocol promises.
func NewResponseShapeError(message string, cause error) *APIError {
	return &APIError{
		Type:    ErrorTypeResponseShape,
		Message: message,
		Err:     cause,
	}
}

// NewListenerError creates an APIError for a lifecycle listener that
// aborted the in-flight call.
func NewListenerError(message string, cause error) *APIError {
	return &APIError{
		Type:    ErrorTypeListener,
		Message: message,
		Err:     cause,
	}
}
