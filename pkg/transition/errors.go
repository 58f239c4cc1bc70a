// Copyright 2025 Certen Protocol
//
// Transition package errors.

package transition

import "errors"

// ErrInvalidStepProof is returned by TW.Verify when the predicate rejects
// the transition/witness pair.
var ErrInvalidStepProof = errors.New("transition: invalid step proof")

// ChainError reports that two transitions could not be chained because the
// first's endpoint does not match the second's start. It carries both
// endpoints for diagnostics, mirroring this repository's chain-continuity
// error pattern (the typed, Unwrap-able proof errors in pkg/anchor_proof).
type ChainError struct {
	FirstEnd    RefAtt
	SecondStart RefAtt
}

func (e *ChainError) Error() string {
	return "transition: cannot chain: first transition ends at a reference different from where the second starts"
}
