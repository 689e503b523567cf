package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest matches every gateway's transport failure kind.
	ErrBadRequest = errors.New("gateway bad request")
	// ErrInvalidInput is returned before any I/O when operation arguments
	// or a transaction model fail validation.
	ErrInvalidInput = errors.New("invalid gateway input")
	// ErrConfigurationNotFound is returned when no payment method is
	// configured under the requested code.
	ErrConfigurationNotFound = errors.New("payment method configuration not found")
	// ErrInvalidConfiguration is returned when a configuration lacks the
	// token, merchant id or environment URL needed to build a client.
	ErrInvalidConfiguration = errors.New("invalid payment method configuration")
	// ErrDecodeResponse is returned when a gateway body cannot be decoded.
	ErrDecodeResponse = errors.New("failed to decode gateway response")
)

// BadRequestError reports that the transport failed to complete a request.
// Kind is the gateway-specific sentinel (e.g. imoje.ErrBadRequest).
type BadRequestError struct {
	Kind   error
	Method string
	URL    string
	Err    error
}

func (e *BadRequestError) Error() string {
	kind := ErrBadRequest
	if e.Kind != nil {
		kind = e.Kind
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s %s", kind, e.Method, e.URL)
	}
	return fmt.Sprintf("%s: %s %s: %v", kind, e.Method, e.URL, e.Err)
}

// Unwrap returns the transport error.
func (e *BadRequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error's kind or the generic ErrBadRequest.
func (e *BadRequestError) Is(target error) bool {
	if target == ErrBadRequest {
		return true
	}
	return e.Kind != nil && target == e.Kind
}
