// Copyright 2025 Certen Protocol
//
// Outer state field commitment construction.

package outerstate

import (
	"crypto/sha256"
	"encoding/binary"
)

// hashPair is the single pairing primitive used throughout the outer tree:
// plain SHA-256 over the concatenation of its operands, no domain-separation
// prefix. Package inclusion keeps its own copy of the identical rule (it
// imports this package for its types, but not this unexported helper) - the
// two copies exist because the outer tree layout is contractual and frozen,
// not because they are expected to diverge.
func hashPair(a, b Hash) Hash {
	h := sha256.New()
	h.Write(a[:])
	h.Write(b[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func putUint32LE(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putUint64LE(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// encodePredKey lays out a PredKey the way the canonical codec would: the
// kind byte, then the condition as a length-prefixed variable buffer.
func encodePredKey(p PredKey) []byte {
	buf := make([]byte, 0, 1+4+len(p.Condition))
	buf = append(buf, p.Kind)
	buf = putUint32LE(buf, uint32(len(p.Condition)))
	buf = append(buf, p.Condition...)
	return buf
}

// encodeContainer lays out one export container: id byte, extra-data array,
// the MMR's bagged root, and its entry count (so two containers with
// different sizes never collide even in the (astronomically unlikely) event
// their bagged roots coincide).
func encodeContainer(c Container) []byte {
	root := c.Entries.Root()
	buf := make([]byte, 0, 1+HashSize+HashSize+8)
	buf = append(buf, c.ID)
	buf = append(buf, c.ExtraData[:]...)
	buf = append(buf, root[:]...)
	buf = putUint64LE(buf, c.Entries.Size())
	return buf
}

// encodeExports lays out the export accumulator as a length-prefixed
// sequence of encoded containers, in their stored (first-appearance) order.
func encodeExports(e Exports) []byte {
	buf := putUint32LE(nil, uint32(len(e.Containers)))
	for _, c := range e.Containers {
		buf = append(buf, encodeContainer(c)...)
	}
	return buf
}

// HashPredKey computes the 32-byte leaf a PredKey contributes to the outer
// tree: SHA-256 of its canonical encoding. Exported so the recursion driver
// can compute the same leaf value independently when checking a step
// predicate's field-inclusion proof against a prior outer commitment.
func HashPredKey(p PredKey) Hash {
	return Hash(sha256.Sum256(encodePredKey(p)))
}

// FieldRoots returns, in the fixed order {inner, next_pred, exports}, the
// 32-byte root each field contributes as a leaf of the outer tree. Two
// structurally equal states always yield byte-equal roots.
func (s *OuterState) FieldRoots() [3]Hash {
	innerLeaf := sha256.Sum256(s.Inner[:])
	predLeaf := HashPredKey(s.NextPred)
	exportsLeaf := sha256.Sum256(encodeExports(s.Exports))
	return [3]Hash{Hash(innerLeaf), predLeaf, Hash(exportsLeaf)}
}

// ComputeCommitment computes the canonical hash of the outer state: the
// field-merkleized binary tree over FieldRoots, padded with the zero leaf to
// the next power of two (four), paired bottom-up with hashPair.
func (s *OuterState) ComputeCommitment() OuterCommit {
	leaves := s.FieldRoots()
	var zero Hash
	h01 := hashPair(leaves[0], leaves[1])
	h23 := hashPair(leaves[2], zero)
	return OuterCommit(hashPair(h01, h23))
}
