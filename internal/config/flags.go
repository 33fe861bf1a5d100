package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override command line flags
const (
	EnvAPIBaseURL = "API_BASE_URL"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLanguage   = "APP_LANGUAGE"
)

// Options are startup overrides. Empty fields keep the stored preference.
type Options struct {
	APIBaseURL string
	LogLevel   string
	Language   string
}

// ParseFlags reads options from args, then from the environment. A local .env
// file is loaded first without overriding variables that are already set.
func ParseFlags(name string, args []string) (Options, error) {
	_ = godotenv.Load() // best-effort: no .env is fine

	var opts Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opts.APIBaseURL, "a", "", "base URL of the shortening API")
	fs.StringVar(&opts.LogLevel, "l", "", "log level")
	fs.StringVar(&opts.Language, "lang", "", "UI language (system, en, ru, pt)")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	if env := os.Getenv(EnvAPIBaseURL); env != "" {
		opts.APIBaseURL = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		opts.LogLevel = env
	}
	if env := os.Getenv(EnvLanguage); env != "" {
		opts.Language = env
	}

	return opts, nil
}
