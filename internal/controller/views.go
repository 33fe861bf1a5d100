package controller

import (
	"time"

	"github.com/ytget/url-shortener/internal/format"
	"github.com/ytget/url-shortener/internal/model"
)

// ShortenView is a shorten result ready for display. OriginalURL is truncated;
// OriginalURLTitle holds the full value for tooltips.
type ShortenView struct {
	ShortCode        string
	OriginalURL      string
	OriginalURLTitle string
	CreatedAt        string
	ExpiresAt        string
}

// StatsView is a stats result ready for display
type StatsView struct {
	OriginalURL      string
	OriginalURLTitle string
	ShortCode        string
	AccessCount      string
	CreatedAt        string
	UpdatedAt        string
	ExpiresAt        string
}

// NewShortenView formats a shorten result with timestamps in loc
func NewShortenView(r *model.ShortenResult, loc *time.Location) ShortenView {
	return ShortenView{
		ShortCode:        r.ShortCode,
		OriginalURL:      format.Truncate(r.URL, format.DefaultTruncateLength),
		OriginalURLTitle: r.URL,
		CreatedAt:        format.FormatTimestampIn(r.CreatedAt, loc),
		ExpiresAt:        format.FormatTimestampIn(r.ExpiresAt, loc),
	}
}

// NewStatsView formats a stats result with timestamps in loc
func NewStatsView(r *model.StatsResult, loc *time.Location) StatsView {
	return StatsView{
		OriginalURL:      format.Truncate(r.OriginalURL, format.DefaultTruncateLength),
		OriginalURLTitle: r.OriginalURL,
		ShortCode:        r.ShortCode,
		AccessCount:      format.FormatCount(r.AccessCount),
		CreatedAt:        format.FormatTimestampIn(r.CreatedAt, loc),
		UpdatedAt:        format.FormatTimestampIn(r.UpdatedAt, loc),
		ExpiresAt:        format.FormatTimestampIn(r.ExpiresAt, loc),
	}
}
