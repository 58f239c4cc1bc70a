// Copyright 2025 Certen Protocol
//
// Package outerstate holds the outer state container - the inner-state
// commitment, the next-step predicate, and the export accumulator - plus the
// canonical commitment derived from them. It has no dependency on any other
// package in this module: every other core package builds on top of it.
package outerstate

import "bytes"

// HashSize is the width, in bytes, of every digest this package produces or
// consumes.
const HashSize = 32

// MaxConditionLen is the canonical bound on a PredKey's condition bytes
// (the protocol parameter K from the outer commitment's field-inclusion
// scheme). 256 matches the reference implementation's choice.
const MaxConditionLen = 256

// MaxMMREntries bounds a single export container's MMR. It is pinned to the
// range of the 4-byte length-prefixed counts the canonical encoding uses for
// sequences, so a container's entry count is always representable on the
// wire.
const MaxMMREntries = 1<<32 - 1

// Hash is a 32-byte digest, used both for commitments and for tree leaves.
type Hash [HashSize]byte

// Ref names a point in the inner history. Two refs are equal iff
// byte-equal.
type Ref Hash

// InnerCommit is a digest of the inner state, opaque to this layer.
type InnerCommit Hash

// OuterCommit is the canonical hash of an OuterState.
type OuterCommit Hash

// PredKey is a tagged handle naming and parameterizing a predicate: a kind
// byte plus condition bytes bounded by MaxConditionLen. Two predicates are
// equal iff structurally equal.
type PredKey struct {
	Kind      byte
	Condition []byte
}

// NewPredKey constructs a PredKey, rejecting conditions longer than
// MaxConditionLen. The condition slice is copied so the caller's backing
// array can be reused.
func NewPredKey(kind byte, condition []byte) (PredKey, error) {
	if len(condition) > MaxConditionLen {
		return PredKey{}, ErrConditionTooLong
	}
	cond := make([]byte, len(condition))
	copy(cond, condition)
	return PredKey{Kind: kind, Condition: cond}, nil
}

// Equal reports whether two predicate keys are structurally equal.
func (p PredKey) Equal(o PredKey) bool {
	return p.Kind == o.Kind && bytes.Equal(p.Condition, o.Condition)
}

// Container is one export sub-accumulator, addressed by a small integer id,
// holding a fixed-size extra-data field and an append-only MMR of 32-byte
// entry digests.
type Container struct {
	ID        byte
	ExtraData Hash
	Entries   MMR
}

// Exports is the ordered list of export containers. At most one container
// exists per id; order is first-appearance order, matching the find-or-
// create semantics of AddEntry.
type Exports struct {
	Containers []Container
}

// containerIndex returns the index of the container with the given id, or
// -1 if none exists yet.
func (e *Exports) containerIndex(id byte) int {
	for i := range e.Containers {
		if e.Containers[i].ID == id {
			return i
		}
	}
	return -1
}

// AddEntry appends entryDigest to the container named by containerID,
// creating a fresh container with zero extra-data if none exists yet.
// Append-only: an entry, once appended, is never removed or reordered.
func (e *Exports) AddEntry(containerID byte, entryDigest Hash) error {
	idx := e.containerIndex(containerID)
	if idx < 0 {
		e.Containers = append(e.Containers, Container{ID: containerID})
		idx = len(e.Containers) - 1
	}
	return e.Containers[idx].Entries.Append(entryDigest)
}

// OuterState is the triple {inner, next_pred, exports}.
type OuterState struct {
	Inner    InnerCommit
	NextPred PredKey
	Exports  Exports
}

// New constructs an OuterState from its three fields. No validity check
// beyond what NewPredKey already enforced on the predicate key.
func New(inner InnerCommit, nextPred PredKey, exports Exports) OuterState {
	return OuterState{Inner: inner, NextPred: nextPred, Exports: exports}
}
