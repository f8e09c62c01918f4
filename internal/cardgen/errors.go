package cardgen

import "errors"

// Error kinds surfaced by generation and formatting. Validation
// predicates (ValidatePrefix, Valid) classify their input instead of
// failing and never return these.
var (
	// ErrInvalidArgument marks malformed caller input: a bad prefix, a
	// partial number of the wrong shape, a non 16-digit string handed to
	// the formatter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInternal marks a postcondition violation, where valid input
	// still produced an ill-formed number. It signals a defect in the
	// generator rather than in the caller.
	ErrInternal = errors.New("internal error")

	// ErrGeneration wraps any failure during full record assembly so
	// callers can match the stage with errors.Is while the root cause
	// stays in the chain.
	ErrGeneration = errors.New("card record generation failed")
)
