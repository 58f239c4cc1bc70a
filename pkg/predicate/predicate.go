// Copyright 2025 Certen Protocol
//
// Package predicate implements the predicate verifier abstraction: a closed
// set of kinds, each a pure capability deciding whether a witness justifies
// a claim. The set is dispatched from a single switch rather than through
// per-kind dynamic dispatch, so it stays representable inside a constrained
// execution environment - generalized from this repository's
// scheme-per-implementation attestation strategy interface into the tagged
// switch this protocol's predicates require.
package predicate

import "github.com/moho-network/attest-engine/pkg/outerstate"

// Kind enumerates the predicate kinds this package knows how to verify. The
// set is closed: adding a kind means adding a case to Verify, never a new
// interface implementation.
type Kind = byte

const (
	KindAlwaysAccept    Kind = 0
	KindNeverAccept     Kind = 1
	KindSchnorr         Kind = 2
	KindEd25519         Kind = 3
	KindGroth16BLS12381 Kind = 4
)

// Verifier is the abstract capability the core chains through: verify a
// witness against a claim under a predicate key. Production code uses
// Default; tests may substitute a stub implementation.
type Verifier interface {
	Verify(pred outerstate.PredKey, claim, witness []byte) error
}

// defaultVerifier dispatches Verify across the closed Kind set via a single
// switch.
type defaultVerifier struct{}

// Default is the Verifier every predicate kind this package implements is
// reachable through.
var Default Verifier = defaultVerifier{}

// Verify decides whether witness justifies claim under pred, dispatching on
// pred.Kind. It never constructs predicate bytes itself; condition and
// witness are opaque cargo the caller supplies.
func (defaultVerifier) Verify(pred outerstate.PredKey, claim, witness []byte) error {
	switch pred.Kind {
	case KindAlwaysAccept:
		return verifyAlwaysAccept(pred, claim, witness)
	case KindNeverAccept:
		return verifyNeverAccept(pred, claim, witness)
	case KindSchnorr:
		return verifySchnorr(pred, claim, witness)
	case KindEd25519:
		return verifyEd25519(pred, claim, witness)
	case KindGroth16BLS12381:
		return verifyGroth16BLS12381(pred, claim, witness)
	default:
		return ErrUnknownKind
	}
}

// verifyAlwaysAccept is used for testing: it accepts any claim/witness pair.
func verifyAlwaysAccept(_ outerstate.PredKey, _, _ []byte) error {
	return nil
}

// verifyNeverAccept is used for testing: it rejects every claim/witness
// pair.
func verifyNeverAccept(_ outerstate.PredKey, _, _ []byte) error {
	return ErrRejected
}
