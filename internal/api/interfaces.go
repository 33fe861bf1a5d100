package api

import (
	"context"

	"github.com/ytget/url-shortener/internal/model"
)

// Gateway defines the remote operations the controller depends on.
type Gateway interface {
	// Shorten submits a long URL and returns the created short code
	Shorten(ctx context.Context, longURL string) (*model.ShortenResult, error)

	// FetchStats returns statistics for a short code; ErrNotFound on 404
	FetchStats(ctx context.Context, shortCode string) (*model.StatsResult, error)

	// CheckHealth reports whether the API answered its liveness endpoint with 2xx.
	// It never returns an error.
	CheckHealth(ctx context.Context) bool
}
