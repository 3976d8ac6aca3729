package domain

import "errors"

// Sentinel errors shared across the usecase layer.
//
// Neither error is ever fatal: validation failures refuse a workflow
// transition and leave state untouched, and a not-found lookup is resolved by
// substituting a fixed fallback record so the presentation layer can always
// render something.
var (
	// ErrValidation marks a refused input: a missing required selection, a
	// non-positive amount or a unit count exceeding the available holding.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown client, plan, fund account or fund
	// identifier.
	ErrNotFound = errors.New("not found")
)
