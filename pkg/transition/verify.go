// Copyright 2025 Certen Protocol
//
// TW witness verification against a predicate.

package transition

import (
	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/predicate"
)

// encodeRefAtt lays out a RefAtt as the canonical codec would: two inline
// 32-byte arrays, reference then commitment.
func encodeRefAtt(r RefAtt) []byte {
	buf := make([]byte, 0, outerstate.HashSize*2)
	buf = append(buf, r.Reference[:]...)
	buf = append(buf, r.Commitment[:]...)
	return buf
}

// encodeT lays out a transition as the canonical codec would: From then To,
// each an inline RefAtt. Duplicated here rather than imported from package
// codec to keep the dependency direction this repository's packages follow
// (codec depends on transition, not the reverse) - the wire format is
// frozen, so the two encodings cannot drift apart in practice.
func encodeT(t T) []byte {
	buf := make([]byte, 0, outerstate.HashSize*4)
	buf = append(buf, encodeRefAtt(t.From)...)
	buf = append(buf, encodeRefAtt(t.To)...)
	return buf
}

// Verify checks tw's witness against its transition under pred, via the
// given verifier. The claim passed to the verifier is the canonical
// encoding of tw.T, never the witness or any other field.
func (tw TW) Verify(pred outerstate.PredKey, verifier predicate.Verifier) error {
	if err := verifier.Verify(pred, encodeT(tw.T), tw.Witness); err != nil {
		return ErrInvalidStepProof
	}
	return nil
}
