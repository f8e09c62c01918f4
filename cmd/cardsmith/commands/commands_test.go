package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paykit/cardsmith/internal/cardgen"
	"github.com/paykit/cardsmith/internal/config"
)

func TestNewEngineSeededDeterminism(t *testing.T) {
	logger := testLogger()

	first, err := NewEngine(logger, 42, true).GenerateRecord("411111")
	require.NoError(t, err)
	second, err := NewEngine(logger, 42, true).GenerateRecord("411111")
	require.NoError(t, err)

	require.Equal(t, first, second, "same seed must replay the same record")
	require.True(t, cardgen.Valid(first.CardNumber))

	other, err := NewEngine(logger, 43, true).GenerateRecord("411111")
	require.NoError(t, err)
	require.NotEqual(t, first.CardNumber+first.CVV, other.CardNumber+other.CVV,
		"different seeds must diverge")
}

func TestNewEngineUnseeded(t *testing.T) {
	rec, err := NewEngine(testLogger(), 0, false).GenerateRecord("555555")
	require.NoError(t, err)
	require.True(t, cardgen.Valid(rec.CardNumber))
}

func TestNewLogger(t *testing.T) {
	for _, cfg := range []*config.Config{
		{LogLevel: "debug", LogFormat: "text"},
		{LogLevel: "info", LogFormat: "json"},
		{LogLevel: "warn", LogFormat: "JSON"},
		{LogLevel: "nonsense", LogFormat: ""},
	} {
		require.NotNil(t, NewLogger(cfg))
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	doc := "presets:\n  - name: acme\n    prefix: \"499999\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	t.Run("built-in by default", func(t *testing.T) {
		c, err := LoadCatalog("", &config.Config{})
		require.NoError(t, err)
		_, ok := c.Get("visa")
		require.True(t, ok)
	})

	t.Run("configured file", func(t *testing.T) {
		c, err := LoadCatalog("", &config.Config{PresetsFile: path})
		require.NoError(t, err)
		_, ok := c.Get("acme")
		require.True(t, ok)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		c, err := LoadCatalog(path, &config.Config{PresetsFile: "/does/not/exist.yaml"})
		require.NoError(t, err)
		_, ok := c.Get("acme")
		require.True(t, ok)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadCatalog("/does/not/exist.yaml", &config.Config{})
		require.Error(t, err)
	})
}
