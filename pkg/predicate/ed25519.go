// Copyright 2025 Certen Protocol
//
// Ed25519 predicate kind.

package predicate

import (
	"crypto/ed25519"

	"github.com/moho-network/attest-engine/pkg/outerstate"
)

// verifyEd25519 implements the KindEd25519 predicate: condition is a
// 32-byte ed25519 public key, witness is a 64-byte signature over claim
// directly (ed25519 hashes internally; no pre-hash is applied here).
// Grounded on this repository's validator-attestation signing scheme
// (pkg/attestation/strategy's ed25519 strategy).
func verifyEd25519(pred outerstate.PredKey, claim, witness []byte) error {
	if len(pred.Condition) != ed25519.PublicKeySize {
		return ErrMalformedWitness
	}
	if len(witness) != ed25519.SignatureSize {
		return ErrMalformedWitness
	}
	if !ed25519.Verify(ed25519.PublicKey(pred.Condition), claim, witness) {
		return ErrRejected
	}
	return nil
}
