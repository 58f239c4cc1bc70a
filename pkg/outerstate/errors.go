// Copyright 2025 Certen Protocol
//
// Outerstate package errors.

package outerstate

import "errors"

// Sentinel errors returned by construction and mutation on this package's
// types. Mirrors the per-package errors.go convention used throughout this
// repository's service layer.
var (
	// ErrConditionTooLong is returned when a predicate key's condition
	// bytes exceed MaxConditionLen.
	ErrConditionTooLong = errors.New("outerstate: predicate condition exceeds maximum length")

	// ErrMMRCapacityExceeded is returned when an append would grow a
	// container's export MMR past its configured entry budget.
	ErrMMRCapacityExceeded = errors.New("outerstate: export MMR capacity exceeded")

	// ErrFieldIndexOutOfRange names an index outside the three defined
	// outer-state fields. No function in this module returns it; package
	// inclusion reports that case with its own ErrFieldIndexOutOfRange.
	ErrFieldIndexOutOfRange = errors.New("outerstate: field index out of range")

	// ErrMalformedMMRSnapshot is returned by MMRFromSnapshot when the
	// supplied peak count does not match the one implied by size.
	ErrMalformedMMRSnapshot = errors.New("outerstate: malformed MMR snapshot")
)
