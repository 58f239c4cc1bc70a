// Copyright 2025 Certen Protocol
//
// Predicate package errors.

package predicate

import "errors"

var (
	// ErrRejected is returned by a predicate kind whose logic determined
	// the witness does not justify the claim.
	ErrRejected = errors.New("predicate: witness rejected")

	// ErrMalformedWitness is returned when witness or condition bytes
	// cannot even be parsed into the shape a predicate kind expects.
	ErrMalformedWitness = errors.New("predicate: malformed witness or condition")

	// ErrUnknownKind is returned for a PredKey.Kind outside the closed
	// set this package dispatches on.
	ErrUnknownKind = errors.New("predicate: unknown predicate kind")
)
