package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	base := settings.GetAPIBaseURL()
	if base != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, base)
	}

	// Test setting custom value with trailing slash
	settings.SetAPIBaseURL("  https://sho.rt/  ")

	retrieved := settings.GetAPIBaseURL()
	if retrieved != "https://sho.rt" {
		t.Errorf("Expected normalized base URL https://sho.rt, got %s", retrieved)
	}

	// Empty resets to default
	settings.SetAPIBaseURL("")
	if settings.GetAPIBaseURL() != DefaultAPIBaseURL {
		t.Error("Empty base URL should reset to default")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, settings.GetLogLevel())
	}

	settings.SetLogLevel("debug")
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected log level 'debug', got %s", settings.GetLogLevel())
	}
}

func TestApply(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetLanguage("pt")

	settings.Apply(Options{APIBaseURL: "http://api.local:9000/", LogLevel: "warn"})

	if settings.GetAPIBaseURL() != "http://api.local:9000" {
		t.Errorf("Expected applied base URL, got %s", settings.GetAPIBaseURL())
	}
	if settings.GetLogLevel() != "warn" {
		t.Errorf("Expected applied log level, got %s", settings.GetLogLevel())
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Empty option must keep stored language, got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
