package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorInterface(t *testing.T) {
	var _ error = &APIError{}
}

func TestAPIErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			"without cause",
			&APIError{Type: ErrorTypeArgument, Message: "no token available"},
			"argument: no token available",
		},
		{
			"with cause",
			&APIError{Type: ErrorTypeTransport, Message: "sending request", Err: errors.New("connection refused")},
			"transport: sending request: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      *APIError
		wantType ErrorType
		wantErr  error
	}{
		{"argument", NewArgumentError("missing token"), ErrorTypeArgument, nil},
		{"transport", NewTransportError("exchange failed", cause), ErrorTypeTransport, cause},
		{"serialization", NewSerializationError("decoding response", cause), ErrorTypeSerialization, cause},
		{"response shape", NewResponseShapeError("not an object", cause), ErrorTypeResponseShape, cause},
		{"listener", NewListenerError("before-send listener", cause), ErrorTypeListener, cause},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", tt.err.Type, tt.wantType)
			}
			if tt.err.Err != tt.wantErr {
				t.Errorf("Err = %v, want %v", tt.err.Err, tt.wantErr)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("original failure")
	err := NewTransportError("exchange failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	var apiErr *APIError
	if !errors.As(error(err), &apiErr) {
		t.Error("errors.As should match *APIError")
	}
}
