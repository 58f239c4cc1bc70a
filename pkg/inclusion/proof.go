// Copyright 2025 Certen Protocol
//
// Package inclusion proves that a specific field of an outer state is bound
// by that state's commitment. It depends on package outerstate for the
// Hash/OuterCommit types the outer tree is built from, but never constructs
// an outerstate.OuterState itself - Generate only needs the three field
// roots outerstate.FieldRoots already produced.
package inclusion

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/moho-network/attest-engine/pkg/outerstate"
)

// FieldCount is the number of real leaves in the outer tree before
// zero-padding to the next power of two.
const FieldCount = 3

// Proof is a bottom-up Merkle path: the sibling at each level from the leaf
// up to the root, plus the leaf's index in the tree's bottom layer.
type Proof struct {
	Branch []outerstate.Hash
	Index  uint8
}

func hashPair(a, b outerstate.Hash) outerstate.Hash {
	h := sha256.New()
	h.Write(a[:])
	h.Write(b[:])
	var out outerstate.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Verify walks proof.Branch bottom-up from leaf, folding in each sibling
// according to the parity of the current index, and reports whether the
// reconstructed root matches root. No generalized index is used: the branch
// length and index jointly locate a unique leaf position.
func Verify(root outerstate.OuterCommit, proof Proof, leaf outerstate.Hash) bool {
	cur := leaf
	idx := proof.Index
	for _, sib := range proof.Branch {
		if idx%2 == 1 {
			cur = hashPair(sib, cur)
		} else {
			cur = hashPair(cur, sib)
		}
		idx /= 2
	}
	return subtle.ConstantTimeCompare(cur[:], root[:]) == 1
}

// Generate pads roots (the outer state's three field roots, in fixed order)
// to four leaves with the zero chunk, computes the intermediate level, and
// emits the branch and index for fieldIndex.
func Generate(roots [FieldCount]outerstate.Hash, fieldIndex uint8) (Proof, error) {
	if fieldIndex >= FieldCount {
		return Proof{}, ErrFieldIndexOutOfRange
	}
	var zero outerstate.Hash
	leaves := [4]outerstate.Hash{roots[0], roots[1], roots[2], zero}
	h01 := hashPair(leaves[0], leaves[1])
	h23 := hashPair(leaves[2], leaves[3])

	var branch []outerstate.Hash
	switch fieldIndex {
	case 0:
		branch = []outerstate.Hash{leaves[1], h23}
	case 1:
		branch = []outerstate.Hash{leaves[0], h23}
	case 2:
		branch = []outerstate.Hash{leaves[3], h01}
	}
	return Proof{Branch: branch, Index: fieldIndex}, nil
}
