// Copyright 2025 Certen Protocol
//
// Package innerstate is a minimal, illustrative implementation of the
// capability an inner state machine must offer the broader runtime around
// this engine - never the recursion driver itself, which only ever
// observes that capability's effects indirectly through the commitments
// and predicates it produces. cmd/moho-prove's self-test mode uses
// HashChain.ComputeStateCommitment to derive the inner commitments of its
// fixture states; the recursion driver's own tests do not use this package.
package innerstate

import (
	"crypto/sha256"

	"github.com/moho-network/attest-engine/pkg/outerstate"
)

// Program mirrors the capability set described for external inner-state
// authors: compute references, commit state, process one step, and fold
// exports. A concrete inner state machine implements this outside the core.
type Program interface {
	ComputeInputReference(stepInput []byte) outerstate.Ref
	ExtractPrevReference(stepInput []byte) outerstate.Ref
	ComputeStateCommitment(state []byte) outerstate.InnerCommit
	ProcessTransition(preState, stepInput []byte) (postState []byte)
	ExtractNextPredicate(postState []byte) (outerstate.PredKey, bool)
	ComputeExportState(prevExports outerstate.Exports, postState []byte) outerstate.Exports
}

// HashChain is a toy Program: its state is the concatenation of every step
// input applied so far, and its state commitment is that state's SHA-256.
// It never rotates the predicate it was constructed with and never touches
// exports - just enough behavior to produce a self-consistent chain of
// OuterStates for tests to chain through.
type HashChain struct {
	Pred outerstate.PredKey
}

// ComputeInputReference names the point in history stepInput leads to: the
// digest of applying it to the empty state, used only to label a fresh
// genesis point in tests.
func (h HashChain) ComputeInputReference(stepInput []byte) outerstate.Ref {
	return outerstate.Ref(sha256.Sum256(stepInput))
}

// ExtractPrevReference has no real predecessor to report in this toy chain;
// callers track predecessor references out of band. This method exists only
// to satisfy the Program contract and returns a placeholder: the SHA-256 of
// "prev:" followed by stepInput.
func (h HashChain) ExtractPrevReference(stepInput []byte) outerstate.Ref {
	return outerstate.Ref(sha256.Sum256(append([]byte("prev:"), stepInput...)))
}

// ComputeStateCommitment hashes the raw state bytes directly; this toy
// chain has no richer structure to commit to.
func (h HashChain) ComputeStateCommitment(state []byte) outerstate.InnerCommit {
	return outerstate.InnerCommit(sha256.Sum256(state))
}

// ProcessTransition appends stepInput to preState and returns the result;
// a hash chain's entire "computation" is concatenation followed by the
// caller hashing the result via ComputeStateCommitment.
func (h HashChain) ProcessTransition(preState, stepInput []byte) []byte {
	out := make([]byte, 0, len(preState)+len(stepInput))
	out = append(out, preState...)
	out = append(out, stepInput...)
	return out
}

// ExtractNextPredicate never rotates the predicate: this toy chain always
// keeps the one it was constructed with.
func (h HashChain) ExtractNextPredicate(_ []byte) (outerstate.PredKey, bool) {
	return outerstate.PredKey{}, false
}

// ComputeExportState passes exports through unchanged; this toy chain
// never populates the export accumulator.
func (h HashChain) ComputeExportState(prevExports outerstate.Exports, _ []byte) outerstate.Exports {
	return prevExports
}
