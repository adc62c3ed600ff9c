// Package errors defines all exported error sentinels for the cid module.
//
// This is the single source of truth for error values. Both the top-level
// cid package and internal packages import from here, ensuring errors.Is
// checks work across package boundaries.
package errors

import "errors"

// Input errors
var (
	ErrEmptyInput    = errors.New("cid: empty input")
	ErrInputTooLarge = errors.New("cid: input exceeds configured length cap")
)

// Pipeline errors
var (
	// ErrConstruction reports that the suffix oracle could not produce a
	// valid suffix array for the input. It is propagated, never retried.
	ErrConstruction = errors.New("cid: suffix array construction failed")

	// ErrInconsistentParse reports that a parse strategy produced factors
	// whose lengths do not sum to the input length. This is a fatal
	// internal-consistency violation and is never silently corrected.
	ErrInconsistentParse = errors.New("cid: factor lengths do not cover input")

	// ErrUnknownStrategy reports a ParseStrategy value with no registered
	// implementation.
	ErrUnknownStrategy = errors.New("cid: unknown parse strategy")
)

// Batch errors
var (
	ErrNoInputs = errors.New("cid: batch requires at least one input")
)
