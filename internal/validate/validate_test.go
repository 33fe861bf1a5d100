package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"http://example.com", true},
		{"https://example.com/very/long/path?q=1#frag", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"http://localhost:8080", true},
		{"not a url", false},
		{"ftp://example.com", false},
		{"example.com", false},
		{"/relative/path", false},
		{"http://", false},
		{"mailto:someone@example.com", false},
		{"javascript:alert(1)", false},
		{"http://[::1", false},
		{"", false},
		{"%zz", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsValidURL(test.input), "IsValidURL(%q)", test.input)
	}
}

func TestIsNonEmpty(t *testing.T) {
	assert.True(t, IsNonEmpty("abc"))
	assert.True(t, IsNonEmpty("  a  "))
	assert.False(t, IsNonEmpty(""))
	assert.False(t, IsNonEmpty(" \t\n "))
}

func TestShortenInput(t *testing.T) {
	require.NoError(t, ShortenInput("  http://example.com  "))

	var vErr *ValidationError
	err := ShortenInput("   ")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, ReasonEmpty, vErr.Reason)

	err = ShortenInput("ftp://example.com")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, ReasonInvalidURL, vErr.Reason)
	assert.Equal(t, "longUrl: invalid_url", vErr.Error())
}

func TestStatsInput(t *testing.T) {
	require.NoError(t, StatsInput("not a url but a code"))

	var vErr *ValidationError
	require.True(t, errors.As(StatsInput(""), &vErr))
	assert.Equal(t, ReasonEmpty, vErr.Reason)
}
