// Package config provides application configuration through environment
// variables, with an optional .env file for local development.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all cardsmith configuration.
type Config struct {
	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string
	// LogFormat selects the log handler: "text" or "json".
	LogFormat string
	// DefaultBIN is the issuer prefix used by generate when none is given
	// on the command line. Empty means prompt interactively.
	DefaultBIN string
	// PromptAttempts bounds how often the interactive prompt retries on
	// malformed input before giving up.
	PromptAttempts int
	// PresetsFile optionally replaces the built-in issuer preset catalog
	// with a YAML file of the same shape.
	PresetsFile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel:       env.GetString("CARDSMITH_LOG_LEVEL", "info"),
		LogFormat:      env.GetString("CARDSMITH_LOG_FORMAT", "text"),
		DefaultBIN:     env.GetString("CARDSMITH_DEFAULT_BIN", ""),
		PromptAttempts: env.GetInt("CARDSMITH_PROMPT_ATTEMPTS", 5),
		PresetsFile:    env.GetString("CARDSMITH_PRESETS_FILE", ""),
	}
}

// loadDotEnv searches for a .env file from the current directory up to
// the root directory and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
