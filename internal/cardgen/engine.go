// Package cardgen generates well-formed synthetic payment card records
// for exercising payment flows: 16-digit Luhn-valid card numbers built
// from a caller-supplied issuer prefix, three-digit CVVs and future
// expiration dates. Numbers are random beyond the prefix and carry no
// cardholder identity; nothing here produces usable card credentials.
package cardgen

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	"github.com/paykit/cardsmith/internal/expiry"
)

// Rand supplies the uniform random draws the engine consumes.
// *rand.Rand from golang.org/x/exp/rand satisfies it; tests substitute
// scripted sources to force exact digit sequences.
type Rand interface {
	Intn(n int) int
}

// Options configures an Engine. The zero value works: a time-seeded
// source, the current wall clock as reference time and slog.Default().
type Options struct {
	// Rand serves every random draw. Nil selects a time-seeded PRNG
	// private to the engine.
	Rand Rand

	// Now anchors expiration generation. The engine captures it once and
	// never re-reads the clock, so records generated from one engine
	// share a consistent notion of the current year.
	Now time.Time

	// Logger receives diagnostic notices such as unusual prefixes.
	Logger *slog.Logger
}

// Engine generates synthetic card records. Construction is cheap and an
// engine is meant for one goroutine; its random source is unsynchronized
// and callers wanting parallelism create one engine per goroutine.
type Engine struct {
	rng    Rand
	now    time.Time
	logger *slog.Logger
}

// Expiration years are drawn from this window relative to the engine's
// reference year, keeping every generated date strictly in the future.
const (
	minFutureYears = 1
	maxFutureYears = 5
)

// New builds an Engine from opts, filling unset fields with defaults.
func New(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		rng:    rng,
		now:    now,
		logger: logger.With(slog.String("component", "cardgen")),
	}
}

// ValidatePrefix reports whether s is a well-formed 6-digit issuer
// prefix. Real issuer ranges never start with '0'; such a prefix is
// still accepted but flagged on the logger so interactive callers see
// the notice. Classification only, no error is returned.
func (e *Engine) ValidatePrefix(s string) bool {
	if len(s) != PrefixLen || !IsDigits(s) {
		return false
	}
	if s[0] == '0' {
		e.logger.Warn("issuer prefix starts with 0, unusual but accepted", slog.String("bin", s))
	}
	return true
}

// GenerateCardNumber builds a complete 16-digit number from prefix: nine
// uniform random body digits followed by the Luhn check digit.
func (e *Engine) GenerateCardNumber(prefix string) (string, error) {
	if !e.ValidatePrefix(prefix) {
		return "", fmt.Errorf("%w: issuer prefix must be %d digits, got %q", ErrInvalidArgument, PrefixLen, prefix)
	}

	b := make([]byte, 0, NumberLen)
	b = append(b, prefix...)
	for i := 0; i < bodyLen; i++ {
		b = append(b, byte('0'+e.rng.Intn(10)))
	}

	cd, err := CheckDigit(string(b))
	if err != nil {
		return "", err
	}
	number := string(append(b, byte('0'+cd)))

	if len(number) != NumberLen {
		return "", fmt.Errorf("%w: generated number has length %d", ErrInternal, len(number))
	}

	e.logger.Debug("generated card number",
		slog.String("bin", prefix),
		slog.String("number", MaskPAN(number)),
	)
	return number, nil
}

// GenerateCVV draws a uniform value in [0, 999] and zero-pads it to
// three digits, so "007" comes up as often as "700".
func (e *Engine) GenerateCVV() string {
	return fmt.Sprintf("%03d", e.rng.Intn(1000))
}

// GenerateExpiration returns a zero-padded (month, year) pair. The year
// lands 1 to 5 years past the engine's reference year, wrapped into the
// two-digit range at the century edge, and the month is unconstrained:
// with the year strictly in the future no month-versus-today comparison
// is needed.
func (e *Engine) GenerateExpiration() (month, year string) {
	curr := e.now.Year() % 100
	y := expiry.WrapYear(curr + minFutureYears + e.rng.Intn(maxFutureYears-minFutureYears+1))
	m := 1 + e.rng.Intn(12)
	return fmt.Sprintf("%02d", m), fmt.Sprintf("%02d", y)
}

// GenerateRecord assembles a full synthetic card for prefix, drawing the
// card number, then the CVV, then the expiration. Prefix acquisition is
// the caller's concern; any failure comes back wrapped in ErrGeneration
// with the cause preserved in the chain.
func (e *Engine) GenerateRecord(prefix string) (*Record, error) {
	number, err := e.GenerateCardNumber(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	cvv := e.GenerateCVV()
	month, year := e.GenerateExpiration()

	rec := &Record{
		BIN:        prefix,
		CardNumber: number,
		CVV:        cvv,
		Month:      month,
		Year:       year,
	}
	e.logger.Info("generated card record",
		slog.String("bin", rec.BIN),
		slog.String("number", MaskPAN(rec.CardNumber)),
		slog.String("expires", expiry.Face(rec.Month, rec.Year)),
	)
	return rec, nil
}
