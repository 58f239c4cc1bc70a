// Copyright 2025 Certen Protocol
//
// Groth16/BLS12-381 predicate kind.

package predicate

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/moho-network/attest-engine/pkg/outerstate"
)

// claimCircuit is the witness schema a KindGroth16BLS12381 proof is checked
// against: a single public input binding the claim's digest. The actual
// incremental-step logic the proof attests to was compiled into whichever
// circuit produced it off-chain; Verify only needs the public witness
// layout to decode the verifying key's public inputs, the same way
// pkg/crypto/bls_zkp binds its circuit to an externally supplied message
// hash via a single public commitment variable.
type claimCircuit struct {
	Claim frontend.Variable `gnark:",public"`
}

func (c *claimCircuit) Define(api frontend.API) error {
	return nil
}

// claimToFieldElement reduces a claim's SHA-256 digest into the BLS12-381
// scalar field, the same binding technique bls_zkp.BLSSignatureCircuit uses
// for its PubkeyCommitment public input.
func claimToFieldElement(claim []byte) *big.Int {
	digest := sha256.Sum256(claim)
	v := new(big.Int).SetBytes(digest[:])
	v.Mod(v, ecc.BLS12_381.ScalarField())
	return v
}

// CommitVerifyingKey computes the 32-byte commitment a KindGroth16BLS12381
// PredKey's condition carries. A full gnark verifying key does not fit
// inside the protocol's condition-length bound (outerstate.MaxConditionLen),
// so the predicate key only identifies the key by its hash; the actual
// verifying key travels alongside the proof in the witness, and Verify
// checks it against this commitment before trusting it.
func CommitVerifyingKey(vkBytes []byte) outerstate.Hash {
	return sha256.Sum256(vkBytes)
}

// EncodeGroth16Witness packs a verifying key and a proof into the witness
// layout verifyGroth16BLS12381 expects: a 4-byte length-prefixed verifying
// key followed by the proof bytes.
func EncodeGroth16Witness(vkBytes, proofBytes []byte) []byte {
	buf := make([]byte, 4, 4+len(vkBytes)+len(proofBytes))
	binary.LittleEndian.PutUint32(buf, uint32(len(vkBytes)))
	buf = append(buf, vkBytes...)
	buf = append(buf, proofBytes...)
	return buf
}

func splitGroth16Witness(witness []byte) (vkBytes, proofBytes []byte, ok bool) {
	if len(witness) < 4 {
		return nil, nil, false
	}
	vkLen := binary.LittleEndian.Uint32(witness[:4])
	rest := witness[4:]
	if uint64(vkLen) > uint64(len(rest)) {
		return nil, nil, false
	}
	return rest[:vkLen], rest[vkLen:], true
}

// verifyGroth16BLS12381 implements the KindGroth16BLS12381 predicate:
// condition is CommitVerifyingKey's 32-byte commitment, witness is
// EncodeGroth16Witness's packed (verifying key, proof) pair, and the proof's
// sole public input is claim's digest reduced into the scalar field.
func verifyGroth16BLS12381(pred outerstate.PredKey, claim, witness []byte) error {
	vkBytes, proofBytes, ok := splitGroth16Witness(witness)
	if !ok {
		return ErrMalformedWitness
	}

	commitment := CommitVerifyingKey(vkBytes)
	if subtle.ConstantTimeCompare(commitment[:], pred.Condition) != 1 {
		return ErrRejected
	}

	vk := groth16.NewVerifyingKey(ecc.BLS12_381)
	if _, err := vk.ReadFrom(bytes.NewReader(vkBytes)); err != nil {
		return ErrMalformedWitness
	}

	proof := groth16.NewProof(ecc.BLS12_381)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return ErrMalformedWitness
	}

	assignment := &claimCircuit{Claim: claimToFieldElement(claim)}
	publicWitness, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return ErrMalformedWitness
	}

	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return ErrRejected
	}
	return nil
}
