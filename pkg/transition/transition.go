// Copyright 2025 Certen Protocol
//
// Package transition implements the transition-chaining algebra: types and
// laws for composing two adjoining transitions into one. It depends on
// package outerstate for Ref/OuterCommit and package predicate for the
// verifier capability a transition's witness is checked against.
package transition

import "github.com/moho-network/attest-engine/pkg/outerstate"

// RefAtt names a concrete historical point by both its reference and the
// outer state commitment that held at it.
type RefAtt struct {
	Reference  outerstate.Ref
	Commitment outerstate.OuterCommit
}

// Equal reports whether two RefAtt values are field-wise equal.
func (r RefAtt) Equal(o RefAtt) bool {
	return r.Reference == o.Reference && r.Commitment == o.Commitment
}

// T is a transition: an ordered pair of state-reference attestations.
// Equality is field-wise.
type T struct {
	From RefAtt
	To   RefAtt
}

// New constructs a transition with no validity check beyond its shape.
func New(from, to RefAtt) T {
	return T{From: from, To: to}
}

// IsNoOp reports whether t.From == t.To. A permitted case, never special-cased
// by the chain operation.
func IsNoOp(t T) bool {
	return t.From.Equal(t.To)
}

// Chain composes t1 and t2 into a single transition covering their
// concatenated history. It succeeds iff t1.To == t2.From; the result is
// {from: t1.From, to: t2.To}. Defined pairwise only - associativity is not
// materialized in code, matching this protocol's driver, which only ever
// chains two transitions at a time.
func Chain(t1, t2 T) (T, error) {
	if !t1.To.Equal(t2.From) {
		return T{}, &ChainError{FirstEnd: t1.To, SecondStart: t2.From}
	}
	return T{From: t1.From, To: t2.To}, nil
}

// TW is a transition together with a witness proving it valid under some
// predicate. The witness is never interpreted by this package; only its
// bytes are forwarded to a Verifier.
type TW struct {
	T       T
	Witness []byte
}

// NewTW constructs a transition-with-witness wrapper.
func NewTW(t T, witness []byte) TW {
	return TW{T: t, Witness: witness}
}

// IntoParts consumes the wrapper, returning its transition and witness.
func (tw TW) IntoParts() (T, []byte) {
	return tw.T, tw.Witness
}
