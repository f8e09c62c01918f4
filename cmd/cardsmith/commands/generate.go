package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/paykit/cardsmith/internal/binlist"
	"github.com/paykit/cardsmith/internal/cardgen"
	"github.com/paykit/cardsmith/internal/config"
	"github.com/paykit/cardsmith/internal/expiry"
)

// recordView is the shape a generated record takes on stdout: the raw
// record fields plus display metadata derived from them.
type recordView struct {
	BIN       string `json:"bin"`
	Scheme    string `json:"scheme"`
	Number    string `json:"card_number"`
	Formatted string `json:"formatted"`
	CVV       string `json:"cvv"`
	Month     string `json:"month"`
	Year      string `json:"year"`
}

// RunGenerate produces count synthetic card records for the resolved
// issuer prefix and writes them to io.Writer. The prefix comes from the
// request's BIN, its preset name, the configured default or an
// interactive prompt, in that order.
func RunGenerate(
	cfg *config.Config,
	logger *slog.Logger,
	engine *cardgen.Engine,
	catalog *binlist.Catalog,
	req GenerateRequest,
	io IOTuple,
) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid generate request: %w", err)
	}

	prefix, err := resolvePrefix(cfg, engine, catalog, req, io)
	if err != nil {
		return err
	}

	logger.Info("generating records",
		slog.String("bin", prefix),
		slog.Int("count", req.Count),
	)

	views := make([]recordView, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		rec, err := engine.GenerateRecord(prefix)
		if err != nil {
			return err
		}
		view, err := newRecordView(rec)
		if err != nil {
			return err
		}
		views = append(views, view)
	}

	if req.Format == "json" {
		return outputRecordsJSON(views, io.Writer)
	}
	outputRecordsText(views, io.Writer)
	return nil
}

// resolvePrefix walks the fallback chain for the issuer prefix.
func resolvePrefix(
	cfg *config.Config,
	engine *cardgen.Engine,
	catalog *binlist.Catalog,
	req GenerateRequest,
	io IOTuple,
) (string, error) {
	switch {
	case req.BIN != "":
		return req.BIN, nil
	case req.Preset != "":
		p, ok := catalog.Get(req.Preset)
		if !ok {
			return "", fmt.Errorf("unknown preset %q (available: %s)", req.Preset, strings.Join(catalog.Names(), ", "))
		}
		return p.Prefix, nil
	case cfg.DefaultBIN != "":
		return cfg.DefaultBIN, nil
	}
	return promptForBIN(engine, cfg.PromptAttempts, io)
}

// promptForBIN interactively asks for a 6-digit issuer prefix, retrying
// on malformed input until the attempts run out.
func promptForBIN(engine *cardgen.Engine, attempts int, io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("no issuer prefix given and no interactive input available")
	}
	if attempts <= 0 {
		attempts = 1
	}

	reader := bufio.NewReader(io.Reader)
	for i := 1; i <= attempts; i++ {
		_, _ = fmt.Fprintf(io.Writer, "Enter a %d-digit BIN (attempt %d/%d): ", cardgen.PrefixLen, i, attempts)

		line, err := reader.ReadString('\n')
		s := strings.TrimSpace(line)
		if err != nil && s == "" {
			return "", fmt.Errorf("reading BIN: %w", err)
		}
		if engine.ValidatePrefix(s) {
			return s, nil
		}

		_, _ = fmt.Fprintf(io.Writer, "Invalid BIN %q: must be exactly %d digits.\n", s, cardgen.PrefixLen)
		if err != nil {
			return "", fmt.Errorf("input ended before a valid BIN was entered")
		}
	}
	return "", fmt.Errorf("no valid BIN after %d attempts", attempts)
}

// newRecordView derives the display fields for one record, re-checking
// the number on the way out. A generated number failing its own check
// means the generator is broken; stop rather than print bad data.
func newRecordView(rec *cardgen.Record) (recordView, error) {
	if !cardgen.Valid(rec.CardNumber) {
		return recordView{}, fmt.Errorf("%w: generated number %s fails the Luhn check", cardgen.ErrInternal, cardgen.MaskPAN(rec.CardNumber))
	}
	formatted, err := cardgen.FormatCardNumber(rec.CardNumber)
	if err != nil {
		return recordView{}, err
	}
	return recordView{
		BIN:       rec.BIN,
		Scheme:    binlist.Scheme(rec.BIN),
		Number:    rec.CardNumber,
		Formatted: formatted,
		CVV:       rec.CVV,
		Month:     rec.Month,
		Year:      rec.Year,
	}, nil
}

// outputRecordsText writes one block per record in human-readable form.
func outputRecordsText(views []recordView, w io.Writer) {
	for i, v := range views {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "card number : %s\n", v.Formatted)
		_, _ = fmt.Fprintf(w, "raw         : %s\n", v.Number)
		_, _ = fmt.Fprintf(w, "bin         : %s (%s)\n", v.BIN, v.Scheme)
		_, _ = fmt.Fprintf(w, "cvv         : %s\n", v.CVV)
		_, _ = fmt.Fprintf(w, "expires     : %s\n", expiry.Face(v.Month, v.Year))
		_, _ = fmt.Fprintf(w, "luhn check  : ok\n")
	}
}

// outputRecordsJSON writes a single object for one record and an array
// for a batch, both indented for reading and piping.
func outputRecordsJSON(views []recordView, w io.Writer) error {
	var payload any = views
	if len(views) == 1 {
		payload = views[0]
	}
	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(jsonBytes))
	return nil
}
