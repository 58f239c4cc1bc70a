// Copyright 2025 Certen Protocol
//
// Recursion package errors.

package recursion

import (
	"errors"

	"github.com/moho-network/attest-engine/pkg/transition"
)

// The driver reports exactly five failure variants; no other failure kind
// is visible to a caller.
var (
	// ErrInvalidMerkleProof is returned when the step predicate is not
	// included at the expected position in the prior outer commitment.
	ErrInvalidMerkleProof = errors.New("recursion: invalid merkle proof")

	// ErrInvalidIncrementalProof is returned when the step predicate
	// rejects the step's transition/witness pair.
	ErrInvalidIncrementalProof = errors.New("recursion: invalid incremental proof")

	// ErrInvalidRecursiveProof is returned when the moho predicate
	// rejects the previous recursive transition/witness pair.
	ErrInvalidRecursiveProof = errors.New("recursion: invalid recursive proof")

	// ErrInvalidChain is returned when the previous transition's
	// endpoint does not match the step transition's start. Prefer
	// inspecting a returned *ChainMismatchError for the endpoints.
	ErrInvalidChain = errors.New("recursion: invalid chain")

	// ErrDecodeError is wrapped by the host harness (cmd/moho-prove) when
	// the bytes read at the host boundary are not a valid encoding of
	// RecInput. Step itself never returns it: decoding happens before
	// Step is called.
	ErrDecodeError = errors.New("recursion: decode error")
)

// ChainMismatchError carries both endpoints of a failed chain composition,
// mirroring this repository's typed proof-error-with-Unwrap pattern.
type ChainMismatchError struct {
	FirstEnd    transition.RefAtt
	SecondStart transition.RefAtt
}

func (e *ChainMismatchError) Error() string {
	return "recursion: cannot chain previous recursive transition into the step transition"
}

func (e *ChainMismatchError) Unwrap() error {
	return ErrInvalidChain
}
