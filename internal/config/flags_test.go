package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLanguage, "")

	opts, err := ParseFlags("test", []string{"-a", "http://flag:1", "-l", "debug", "-lang", "ru"})
	require.NoError(t, err)
	assert.Equal(t, Options{APIBaseURL: "http://flag:1", LogLevel: "debug", Language: "ru"}, opts)
}

func TestParseFlags_EnvOverridesFlags(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "http://env:2")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLanguage, "pt")

	opts, err := ParseFlags("test", []string{"-a", "http://flag:1", "-l", "warn"})
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", opts.APIBaseURL)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, "pt", opts.Language)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags("test", []string{"-nope"})
	assert.Error(t, err)
}
