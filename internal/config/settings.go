package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL = "api_base_url"
	KeyLanguage   = "app_language"
	KeyLogLevel   = "log_level"
)

// Default values
const (
	DefaultAPIBaseURL = "http://localhost:8080"
	DefaultLanguage   = "system"
	DefaultLogLevel   = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured backend address without a trailing slash
func (s *Settings) GetAPIBaseURL() string {
	base := s.app.Preferences().String(KeyAPIBaseURL)
	if base == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return base
}

// SetAPIBaseURL stores the backend address, normalized
func (s *Settings) SetAPIBaseURL(base string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, NormalizeBaseURL(base))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level used on next start
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// Apply stores every non-empty option, letting flags and env override preferences
func (s *Settings) Apply(opts Options) {
	if opts.APIBaseURL != "" {
		s.SetAPIBaseURL(opts.APIBaseURL)
	}
	if opts.Language != "" {
		s.SetLanguage(opts.Language)
	}
	if opts.LogLevel != "" {
		s.SetLogLevel(opts.LogLevel)
	}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// NormalizeBaseURL trims whitespace and trailing slashes, defaulting when empty
func NormalizeBaseURL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return DefaultAPIBaseURL
	}
	return base
}
