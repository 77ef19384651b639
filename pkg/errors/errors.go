package errors

import (
	"encoding/json"
	"fmt"
)

// ValidationError is returned for bad input, including a payment signature mismatch.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError is returned when the shipping provider login fails.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("shipping provider authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ProviderError is returned when the shipping provider rejects a request.
// StatusCode is zero when no response was received.
type ProviderError struct {
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shipping provider error: %v", e.Err)
	}
	return fmt.Sprintf("shipping provider error: status %d, body: %s", e.StatusCode, string(e.Body))
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// GatewayError is returned when the payment gateway rejects a request.
type GatewayError struct {
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway error: %v", e.Err)
	}
	return fmt.Sprintf("payment gateway error: status %d, body: %s", e.StatusCode, string(e.Body))
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Detail returns body as JSON if it is valid JSON, otherwise as a string.
// Returns nil for an empty body.
func Detail(body json.RawMessage) interface{} {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return body
	}
	return string(body)
}
