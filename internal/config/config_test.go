package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Equal(t, "", cfg.DefaultBIN)
				assert.Equal(t, 5, cfg.PromptAttempts)
				assert.Equal(t, "", cfg.PresetsFile)
			},
		},
		{
			name: "load custom logging configuration",
			envVars: map[string]string{
				"CARDSMITH_LOG_LEVEL":  "debug",
				"CARDSMITH_LOG_FORMAT": "json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
			},
		},
		{
			name: "load custom generation configuration",
			envVars: map[string]string{
				"CARDSMITH_DEFAULT_BIN":     "555555",
				"CARDSMITH_PROMPT_ATTEMPTS": "3",
				"CARDSMITH_PRESETS_FILE":    "/etc/cardsmith/presets.yaml",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "555555", cfg.DefaultBIN)
				assert.Equal(t, 3, cfg.PromptAttempts)
				assert.Equal(t, "/etc/cardsmith/presets.yaml", cfg.PresetsFile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}
