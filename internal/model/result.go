package model

import "encoding/json"

// ShortenRequest is the user's long URL. It is sent to the backend as a bare
// JSON string rather than an object.
type ShortenRequest struct {
	LongURL string
}

// MarshalJSON encodes the request as a JSON string
func (r ShortenRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.LongURL)
}

// ShortenResult is the backend response to a successful shorten call.
// Timestamps are kept raw; presentation code formats them.
type ShortenResult struct {
	ShortCode string `json:"shortCode"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`
}

// StatsQuery is the short code whose statistics are requested
type StatsQuery struct {
	ShortCode string
}

// StatsResult is the backend response for a stats lookup
type StatsResult struct {
	OriginalURL string `json:"originalUrl"`
	ShortCode   string `json:"shortCode"`
	AccessCount int64  `json:"accessCount"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	ExpiresAt   string `json:"expiresAt"`
}

// Normalize clamps values the UI cannot display meaningfully
func (s *StatsResult) Normalize() {
	if s.AccessCount < 0 {
		s.AccessCount = 0
	}
}

// ErrorBody is the optional JSON body of a non-2xx response
type ErrorBody struct {
	Message string `json:"message"`
}
