// Package format contains presentation helpers shared by the controller and
// the UI. None of them fail: unparsable input is passed through unchanged.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTruncateLength is the display width of URLs in result panels
const DefaultTruncateLength = 50

// Ellipsis is appended to truncated text
const Ellipsis = "..."

// DisplayLayout renders like en-US toLocaleString with a short month and a 12-hour clock
const DisplayLayout = "Jan 2, 2006, 03:04 PM"

// Layouts accepted by ParseTimestamp, tried in order. The zone-less ones are
// what the backend emits for local date-times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatError reports a timestamp that could not be parsed
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return "unrecognized timestamp: " + e.Raw
}

// Truncate shortens text to maxLength runes plus an ellipsis
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + Ellipsis
}

// ParseTimestamp parses raw in one of the accepted layouts. Zone-less values
// are interpreted in loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FormatError{Raw: raw}
}

// FormatTimestamp renders raw in local time, or returns it unchanged if it cannot be parsed
func FormatTimestamp(raw string) string {
	return FormatTimestampIn(raw, time.Local)
}

// FormatTimestampIn is FormatTimestamp for an explicit location
func FormatTimestampIn(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, err := ParseTimestamp(raw, loc)
	if err != nil {
		return raw
	}
	return t.In(loc).Format(DisplayLayout)
}

var countPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCount groups thousands the way en-US toLocaleString does
func FormatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}
