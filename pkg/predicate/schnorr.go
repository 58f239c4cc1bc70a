// Copyright 2025 Certen Protocol
//
// BIP-340 Schnorr predicate kind.

package predicate

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/moho-network/attest-engine/pkg/outerstate"
)

// verifySchnorr implements the KindSchnorr predicate: condition is a
// 32-byte BIP-340 x-only public key, witness is a 64-byte BIP-340 signature
// over SHA-256(claim). Grounded on this repository's secp256k1/schnorr
// dependency family (github.com/btcsuite/btcd/btcec/v2), the predicate kind
// spec.md names explicitly.
func verifySchnorr(pred outerstate.PredKey, claim, witness []byte) error {
	pubKey, err := schnorr.ParsePubKey(pred.Condition)
	if err != nil {
		return ErrMalformedWitness
	}
	sig, err := schnorr.ParseSignature(witness)
	if err != nil {
		return ErrMalformedWitness
	}
	digest := sha256.Sum256(claim)
	if !sig.Verify(digest[:], pubKey) {
		return ErrRejected
	}
	return nil
}
