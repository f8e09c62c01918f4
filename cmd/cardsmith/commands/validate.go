package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/paykit/cardsmith/internal/binlist"
	"github.com/paykit/cardsmith/internal/cardgen"
	"github.com/paykit/cardsmith/internal/expiry"
)

// ErrValidationFailed reports that the checked card data did not pass.
// The command's output carries the detail; the error only makes the
// process exit non-zero for scripts.
var ErrValidationFailed = errors.New("card validation failed")

// validationView is the validate command's stdout shape.
type validationView struct {
	Number     string `json:"card_number"`
	LuhnValid  bool   `json:"luhn_valid"`
	Scheme     string `json:"scheme"`
	Expiration string `json:"expiration,omitempty"`
	Expired    *bool  `json:"expired,omitempty"`
	Valid      bool   `json:"valid"`
}

// RunValidate checks a card number, and optionally an expiration date,
// against the rules the generator guarantees. Separators in the number
// are tolerated. It returns ErrValidationFailed when any check fails.
func RunValidate(logger *slog.Logger, req ValidateRequest, now time.Time, io IOTuple) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid validate request: %w", err)
	}

	number := cardgen.NormalizePAN(req.Number)
	view := validationView{
		Number:    number,
		LuhnValid: cardgen.Valid(number),
		Scheme:    binlist.Scheme(number),
	}
	view.Valid = view.LuhnValid

	if req.Exp != "" {
		month, year, err := expiry.ParseFace(req.Exp)
		if err != nil {
			return err
		}
		expired, err := expiry.IsExpired(month, year, now)
		if err != nil {
			return err
		}
		view.Expiration = expiry.Face(month, year)
		view.Expired = &expired
		if expired {
			view.Valid = false
		}
	}

	logger.Info("validated card data",
		slog.String("number", cardgen.MaskPAN(number)),
		slog.Bool("valid", view.Valid),
	)

	if req.Format == "json" {
		if err := outputValidationJSON(view, io.Writer); err != nil {
			return err
		}
	} else {
		outputValidationText(view, io.Writer)
	}

	if !view.Valid {
		return ErrValidationFailed
	}
	return nil
}

func outputValidationText(view validationView, w io.Writer) {
	luhn := "failed"
	if view.LuhnValid {
		luhn = "ok"
	}
	result := "invalid"
	if view.Valid {
		result = "valid"
	}

	_, _ = fmt.Fprintf(w, "number  : %s\n", view.Number)
	_, _ = fmt.Fprintf(w, "luhn    : %s\n", luhn)
	_, _ = fmt.Fprintf(w, "scheme  : %s\n", view.Scheme)
	if view.Expired != nil {
		status := "ok"
		if *view.Expired {
			status = "expired"
		}
		_, _ = fmt.Fprintf(w, "expires : %s (%s)\n", view.Expiration, status)
	}
	_, _ = fmt.Fprintf(w, "result  : %s\n", result)
}

func outputValidationJSON(view validationView, w io.Writer) error {
	jsonBytes, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(jsonBytes))
	return nil
}
