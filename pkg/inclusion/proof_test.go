// Copyright 2025 Certen Protocol
//
// Inclusion proof tests.

package inclusion

import (
	"testing"

	"github.com/moho-network/attest-engine/pkg/outerstate"
)

func sampleRoots() [FieldCount]outerstate.Hash {
	var r [FieldCount]outerstate.Hash
	r[0][0] = 1
	r[1][0] = 2
	r[2][0] = 3
	return r
}

func outerRoot(roots [FieldCount]outerstate.Hash) outerstate.OuterCommit {
	var zero outerstate.Hash
	leaves := [4]outerstate.Hash{roots[0], roots[1], roots[2], zero}
	h01 := hashPair(leaves[0], leaves[1])
	h23 := hashPair(leaves[2], leaves[3])
	return outerstate.OuterCommit(hashPair(h01, h23))
}

func TestGenerateThenVerifySucceedsForEachField(t *testing.T) {
	roots := sampleRoots()
	root := outerRoot(roots)
	for i := uint8(0); i < FieldCount; i++ {
		proof, err := Generate(roots, i)
		if err != nil {
			t.Fatalf("Generate(%d): %v", i, err)
		}
		if !Verify(root, proof, roots[i]) {
			t.Fatalf("Verify failed for field %d", i)
		}
	}
}

func TestVerifyRejectsWrongLeaf(t *testing.T) {
	roots := sampleRoots()
	root := outerRoot(roots)
	proof, err := Generate(roots, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var wrong outerstate.Hash
	wrong[0] = 0xFF
	if Verify(root, proof, wrong) {
		t.Fatalf("Verify accepted a leaf that differs from the committed one")
	}
}

func TestGenerateRejectsOutOfRangeIndex(t *testing.T) {
	roots := sampleRoots()
	if _, err := Generate(roots, FieldCount); err != ErrFieldIndexOutOfRange {
		t.Fatalf("got %v, want ErrFieldIndexOutOfRange", err)
	}
}

func TestVerifyRejectsTamperedBranch(t *testing.T) {
	roots := sampleRoots()
	root := outerRoot(roots)
	proof, err := Generate(roots, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	proof.Branch[0][0] ^= 0xFF
	if Verify(root, proof, roots[0]) {
		t.Fatalf("Verify accepted a tampered branch")
	}
}
