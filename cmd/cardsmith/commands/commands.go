// Package commands contains the CLI command implementations for
// cardsmith. Commands receive their dependencies and an IOTuple as
// arguments so tests can script input and capture output.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/paykit/cardsmith/internal/binlist"
	"github.com/paykit/cardsmith/internal/cardgen"
	"github.com/paykit/cardsmith/internal/config"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// NewLogger builds the process logger from configuration. Logs go to
// stderr so records on stdout stay pipeable, and every invocation gets
// a run_id for correlating batch output with log lines.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler).With(slog.String("run_id", uuid.NewString()))
}

// NewEngine builds the generation engine for one invocation. A seeded
// engine replays identical records for identical inputs, which is what
// --seed exists for.
func NewEngine(logger *slog.Logger, seed int64, seeded bool) *cardgen.Engine {
	opts := cardgen.Options{Logger: logger}
	if seeded {
		opts.Rand = rand.New(rand.NewSource(uint64(seed)))
	}
	return cardgen.New(opts)
}

// LoadCatalog resolves the preset catalog: an explicit path wins over
// the configured file, which wins over the built-in catalog.
func LoadCatalog(path string, cfg *config.Config) (*binlist.Catalog, error) {
	if path == "" {
		path = cfg.PresetsFile
	}
	if path == "" {
		return binlist.Default(), nil
	}
	return binlist.LoadFile(path)
}
