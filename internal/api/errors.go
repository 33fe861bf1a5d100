package api

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by FetchStats when the short code is unknown or expired
var ErrNotFound = errors.New("short code not found")

// APIError is any non-2xx answer other than a stats 404
type APIError struct {
	Status int
	// Message is the server-supplied "message" field, empty if absent
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// NetworkError means no HTTP response was obtained
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a stats not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsNetwork reports whether err means the server was not reached.
func IsNetwork(err error) bool {
	var nErr *NetworkError
	return errors.As(err, &nErr)
}

// AsAPIError extracts an *APIError from err
func AsAPIError(err error) (*APIError, bool) {
	var aErr *APIError
	if errors.As(err, &aErr) {
		return aErr, true
	}
	return nil, false
}
