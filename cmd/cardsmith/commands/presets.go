package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paykit/cardsmith/internal/binlist"
)

// RunPresets lists the issuer prefixes available to the generate
// command by name.
func RunPresets(catalog *binlist.Catalog, req PresetsRequest, io IOTuple) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid presets request: %w", err)
	}

	presets := catalog.All()
	if req.Format == "json" {
		return outputPresetsJSON(presets, io.Writer)
	}
	outputPresetsText(presets, io.Writer)
	return nil
}

func outputPresetsText(presets []binlist.Preset, w io.Writer) {
	_, _ = fmt.Fprintf(w, "%-20s %-8s %-12s %s\n", "NAME", "PREFIX", "SCHEME", "NOTE")
	for _, p := range presets {
		_, _ = fmt.Fprintf(w, "%-20s %-8s %-12s %s\n", p.Name, p.Prefix, p.Scheme, p.Note)
	}
}

func outputPresetsJSON(presets []binlist.Preset, w io.Writer) error {
	jsonBytes, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(jsonBytes))
	return nil
}
