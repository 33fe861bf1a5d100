// Package validate holds the input predicates used before any network call.
package validate

import (
	"net/url"
	"strings"
)

// Reason explains why an input was rejected
type Reason string

const (
	ReasonEmpty      Reason = "empty"
	ReasonInvalidURL Reason = "invalid_url"
)

// ValidationError is returned for input that must not reach the network
type ValidationError struct {
	Field  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + string(e.Reason)
}

// IsValidURL reports whether input is an absolute http or https URL
func IsValidURL(input string) bool {
	parsedURL, err := url.Parse(input)
	if err != nil {
		return false
	}

	if !parsedURL.IsAbs() || parsedURL.Host == "" {
		return false
	}

	scheme := strings.ToLower(parsedURL.Scheme)
	return scheme == "http" || scheme == "https"
}

// IsNonEmpty reports whether input has any non-whitespace content
func IsNonEmpty(input string) bool {
	return strings.TrimSpace(input) != ""
}

// ShortenInput validates a long URL submitted for shortening
func ShortenInput(input string) error {
	input = strings.TrimSpace(input)
	if !IsNonEmpty(input) {
		return &ValidationError{Field: "longUrl", Reason: ReasonEmpty}
	}
	if !IsValidURL(input) {
		return &ValidationError{Field: "longUrl", Reason: ReasonInvalidURL}
	}
	return nil
}

// StatsInput validates a short code. Any non-empty code is accepted.
func StatsInput(input string) error {
	if !IsNonEmpty(input) {
		return &ValidationError{Field: "shortCode", Reason: ReasonEmpty}
	}
	return nil
}
