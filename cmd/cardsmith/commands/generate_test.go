package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paykit/cardsmith/internal/binlist"
	"github.com/paykit/cardsmith/internal/cardgen"
	"github.com/paykit/cardsmith/internal/config"
)

// scriptedRand replays a fixed draw sequence so tests can pin the exact
// records a command produces.
type scriptedRand struct {
	draws []int
	pos   int
}

func (s *scriptedRand) Intn(n int) int {
	if s.pos >= len(s.draws) {
		panic("scripted rand exhausted")
	}
	d := s.draws[s.pos]
	s.pos++
	return d % n
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordDraws is one record's worth of draws: nine body digits, the
// CVV, the year offset and the month.
func recordDraws(digits [9]int, cvv, year, month int) []int {
	draws := make([]int, 0, 12)
	for _, d := range digits {
		draws = append(draws, d)
	}
	return append(draws, cvv, year, month)
}

func scriptedEngine(t *testing.T, draws []int) *cardgen.Engine {
	t.Helper()
	return cardgen.New(cardgen.Options{
		Rand:   &scriptedRand{draws: draws},
		Now:    time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Logger: testLogger(),
	})
}

func TestRunGenerate(t *testing.T) {
	cfg := &config.Config{PromptAttempts: 5}
	catalog := binlist.Default()
	oneRecord := recordDraws([9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 7, 2, 10)

	t.Run("bin text output", func(t *testing.T) {
		var out bytes.Buffer
		req := GenerateRequest{BIN: "411111", Count: 1, Format: "text"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, oneRecord), catalog, req, IOTuple{Writer: &out})
		require.NoError(t, err)

		require.Contains(t, out.String(), "card number : 4111 1112 3456 7892")
		require.Contains(t, out.String(), "raw         : 4111111234567892")
		require.Contains(t, out.String(), "bin         : 411111 (visa)")
		require.Contains(t, out.String(), "cvv         : 007")
		require.Contains(t, out.String(), "expires     : 11/29")
		require.Contains(t, out.String(), "luhn check  : ok")
	})

	t.Run("bin json output", func(t *testing.T) {
		var out bytes.Buffer
		req := GenerateRequest{BIN: "411111", Count: 1, Format: "json"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, oneRecord), catalog, req, IOTuple{Writer: &out})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Equal(t, "411111", got["bin"])
		require.Equal(t, "visa", got["scheme"])
		require.Equal(t, "4111111234567892", got["card_number"])
		require.Equal(t, "4111 1112 3456 7892", got["formatted"])
		require.Equal(t, "007", got["cvv"])
		require.Equal(t, "11", got["month"])
		require.Equal(t, "29", got["year"])
	})

	t.Run("json batch is an array", func(t *testing.T) {
		draws := append(
			recordDraws([9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 7, 2, 10),
			recordDraws([9]int{0, 0, 0, 0, 0, 0, 0, 0, 0}, 0, 0, 0)...,
		)
		var out bytes.Buffer
		req := GenerateRequest{BIN: "411111", Count: 2, Format: "json"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, draws), catalog, req, IOTuple{Writer: &out})
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Len(t, got, 2)
		require.Equal(t, "4111111234567892", got[0]["card_number"])
		require.Equal(t, "4111110000000005", got[1]["card_number"])
	})

	t.Run("preset resolves prefix", func(t *testing.T) {
		var out bytes.Buffer
		draws := recordDraws([9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 1, 5)
		req := GenerateRequest{Preset: "mastercard", Count: 1, Format: "text"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, draws), catalog, req, IOTuple{Writer: &out})
		require.NoError(t, err)

		require.Contains(t, out.String(), "raw         : 5555551234567899")
		require.Contains(t, out.String(), "bin         : 555555 (mastercard)")
	})

	t.Run("unknown preset", func(t *testing.T) {
		var out bytes.Buffer
		req := GenerateRequest{Preset: "amex", Count: 1, Format: "text"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, nil), catalog, req, IOTuple{Writer: &out})
		require.ErrorContains(t, err, "unknown preset")
		require.ErrorContains(t, err, "visa")
	})

	t.Run("configured default bin", func(t *testing.T) {
		withDefault := &config.Config{DefaultBIN: "601111", PromptAttempts: 5}
		var out bytes.Buffer
		req := GenerateRequest{Count: 1, Format: "text"}

		err := RunGenerate(withDefault, testLogger(), scriptedEngine(t, oneRecord), catalog, req, IOTuple{Writer: &out})
		require.NoError(t, err)
		require.Contains(t, out.String(), "bin         : 601111 (discover)")
	})

	t.Run("interactive prompt accepts after retries", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("abc\n123\n411111\n")
		req := GenerateRequest{Count: 1, Format: "text"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, oneRecord), catalog, req, IOTuple{Reader: in, Writer: &out})
		require.NoError(t, err)

		require.Equal(t, 2, strings.Count(out.String(), "Invalid BIN"))
		require.Contains(t, out.String(), "raw         : 4111111234567892")
	})

	t.Run("interactive prompt exhausts attempts", func(t *testing.T) {
		twoAttempts := &config.Config{PromptAttempts: 2}
		var out bytes.Buffer
		in := strings.NewReader("x\ny\nz\n")
		req := GenerateRequest{Count: 1, Format: "text"}

		err := RunGenerate(twoAttempts, testLogger(), scriptedEngine(t, nil), catalog, req, IOTuple{Reader: in, Writer: &out})
		require.ErrorContains(t, err, "no valid BIN after 2 attempts")
	})

	t.Run("interactive input ends early", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("")
		req := GenerateRequest{Count: 1, Format: "text"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, nil), catalog, req, IOTuple{Reader: in, Writer: &out})
		require.ErrorContains(t, err, "reading BIN")
	})

	t.Run("no prefix and no input", func(t *testing.T) {
		var out bytes.Buffer
		req := GenerateRequest{Count: 1, Format: "text"}

		err := RunGenerate(cfg, testLogger(), scriptedEngine(t, nil), catalog, req, IOTuple{Writer: &out})
		require.ErrorContains(t, err, "no interactive input")
	})
}

func TestRunGenerateRequestValidation(t *testing.T) {
	cfg := &config.Config{PromptAttempts: 5}
	catalog := binlist.Default()

	tests := []struct {
		name    string
		req     GenerateRequest
		wantErr string
	}{
		{
			name:    "bin and preset together",
			req:     GenerateRequest{BIN: "411111", Preset: "visa", Count: 1, Format: "text"},
			wantErr: "not both",
		},
		{
			name:    "malformed bin",
			req:     GenerateRequest{BIN: "12345", Count: 1, Format: "text"},
			wantErr: "bin must be exactly 6 digits",
		},
		{
			name:    "zero count",
			req:     GenerateRequest{BIN: "411111", Count: 0, Format: "text"},
			wantErr: "count must be at least 1",
		},
		{
			name:    "negative count",
			req:     GenerateRequest{BIN: "411111", Count: -3, Format: "text"},
			wantErr: "count must be at least 1",
		},
		{
			name:    "excessive count",
			req:     GenerateRequest{BIN: "411111", Count: 20000, Format: "text"},
			wantErr: "count must be at most 10000",
		},
		{
			name:    "unknown format",
			req:     GenerateRequest{BIN: "411111", Count: 1, Format: "xml"},
			wantErr: "format must be 'text' or 'json'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunGenerate(cfg, testLogger(), scriptedEngine(t, nil), catalog, tt.req, IOTuple{Writer: &out})
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
