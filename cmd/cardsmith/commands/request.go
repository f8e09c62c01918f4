package commands

import (
	"regexp"

	validation "github.com/jellydator/validation"
)

var reBIN = regexp.MustCompile(`^[0-9]{6}$`)

// GenerateRequest carries the generate command's parameters after flag
// parsing.
type GenerateRequest struct {
	BIN    string
	Preset string
	Count  int
	Format string
}

// Validate checks flag well-formedness before any generation starts.
// Prefix semantics stay with the engine; this only catches flag
// combinations that can never work.
func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BIN,
			validation.Match(reBIN).Error("bin must be exactly 6 digits"),
			validation.When(r.Preset != "",
				validation.Empty.Error("use either --bin or --preset, not both"),
			),
		),
		validation.Field(&r.Count,
			validation.Required.Error("count must be at least 1"),
			validation.Min(1).Error("count must be at least 1"),
			validation.Max(10000).Error("count must be at most 10000"),
		),
		validation.Field(&r.Format,
			validation.Required.Error("format is required"),
			validation.In("text", "json").Error("format must be 'text' or 'json'"),
		),
	)
}

// ValidateRequest carries the validate command's parameters.
type ValidateRequest struct {
	Number string
	Exp    string
	Format string
}

// Validate checks that the command was invoked with a number to check.
func (r ValidateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Number,
			validation.Required.Error("card number is required"),
		),
		validation.Field(&r.Format,
			validation.Required.Error("format is required"),
			validation.In("text", "json").Error("format must be 'text' or 'json'"),
		),
	)
}

// PresetsRequest carries the presets command's parameters.
type PresetsRequest struct {
	Format string
}

// Validate checks the requested output format.
func (r PresetsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Format,
			validation.Required.Error("format is required"),
			validation.In("text", "json").Error("format must be 'text' or 'json'"),
		),
	)
}
