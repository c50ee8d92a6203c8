package domain

import (
	"errors"
	"fmt"
)

// NetworkErrorMessage is the message stored when no HTTP response was received
const NetworkErrorMessage = "Network error"

// APIError is the normalized failure value for every backend operation.
// Code carries the HTTP status (or the backend's own code when the body
// provides one); Code 0 means the transport failed before a response arrived.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// IsNetwork reports whether the error represents a transport failure
func (e *APIError) IsNetwork() bool {
	return e.Code == 0
}

// NewNetworkError returns the normalized transport failure
func NewNetworkError() *APIError {
	return &APIError{Code: 0, Message: NetworkErrorMessage}
}

// AsAPIError converts any error into the normalized shape. Errors that are
// not already an *APIError are treated as transport failures.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewNetworkError()
}

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoSession        = errors.New("no persisted session")
)
