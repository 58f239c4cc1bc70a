// Copyright 2025 Certen Protocol
//
// Canonical encode/decode for inclusion proofs, RecInput, and RecOutput.

package codec

import (
	"github.com/moho-network/attest-engine/pkg/inclusion"
	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/recursion"
	"github.com/moho-network/attest-engine/pkg/transition"
)

// EncodeInclusionProof appends p's canonical encoding to w: the branch as a
// length-prefixed sequence of 32-byte hashes, then the index byte.
func EncodeInclusionProof(w *Writer, p inclusion.Proof) {
	w.PutUint32(uint32(len(p.Branch)))
	for _, h := range p.Branch {
		putHash(w, h)
	}
	w.PutByte(p.Index)
}

// DecodeInclusionProof reads an inclusion.Proof from r.
func DecodeInclusionProof(r *Reader) (inclusion.Proof, error) {
	n, err := r.GetUint32()
	if err != nil {
		return inclusion.Proof{}, err
	}
	branch := make([]outerstate.Hash, n)
	for i := range branch {
		h, err := getHash(r)
		if err != nil {
			return inclusion.Proof{}, err
		}
		branch[i] = h
	}
	idx, err := r.GetByte()
	if err != nil {
		return inclusion.Proof{}, err
	}
	return inclusion.Proof{Branch: branch, Index: idx}, nil
}

// optionAbsent and optionPresent tag whether RecInput.PrevRec is the
// induction's base case or a genuine prior recursive transition. This is a
// reserved-value tag, not a length check: "absent" and "present with empty
// witness bytes" are never conflated.
const (
	optionAbsent  = 0
	optionPresent = 1
)

// EncodeRecInput returns the canonical encoding of a RecInput.
func EncodeRecInput(in recursion.RecInput) []byte {
	w := NewWriter()
	EncodePredKey(w, in.MohoPred)
	if in.PrevRec == nil {
		w.PutByte(optionAbsent)
	} else {
		w.PutByte(optionPresent)
		EncodeTW(w, *in.PrevRec)
	}
	EncodeTW(w, in.Step)
	EncodePredKey(w, in.StepPred)
	EncodeInclusionProof(w, in.StepIncl)
	return w.Bytes()
}

// DecodeRecInput parses the canonical encoding of a RecInput, requiring the
// input to be fully consumed. A malformed option tag is a decode error, not
// silently treated as absent.
func DecodeRecInput(b []byte) (recursion.RecInput, error) {
	r := NewReader(b)

	mohoPred, err := DecodePredKey(r)
	if err != nil {
		return recursion.RecInput{}, err
	}

	tag, err := r.GetByte()
	if err != nil {
		return recursion.RecInput{}, err
	}
	var prevRec *transition.TW
	switch tag {
	case optionAbsent:
		prevRec = nil
	case optionPresent:
		tw, err := DecodeTW(r)
		if err != nil {
			return recursion.RecInput{}, err
		}
		prevRec = &tw
	default:
		return recursion.RecInput{}, ErrInvalidOptionTag
	}

	step, err := DecodeTW(r)
	if err != nil {
		return recursion.RecInput{}, err
	}
	stepPred, err := DecodePredKey(r)
	if err != nil {
		return recursion.RecInput{}, err
	}
	incl, err := DecodeInclusionProof(r)
	if err != nil {
		return recursion.RecInput{}, err
	}
	if !r.Done() {
		return recursion.RecInput{}, ErrTrailingBytes
	}

	return recursion.RecInput{
		MohoPred: mohoPred,
		PrevRec:  prevRec,
		Step:     step,
		StepPred: stepPred,
		StepIncl: incl,
	}, nil
}

// EncodeRecOutput returns the canonical encoding of a RecOutput.
func EncodeRecOutput(out recursion.RecOutput) []byte {
	w := NewWriter()
	EncodePredKey(w, out.MohoPred)
	EncodeT(w, out.Transition)
	return w.Bytes()
}

// DecodeRecOutput parses the canonical encoding of a RecOutput, requiring
// the input to be fully consumed.
func DecodeRecOutput(b []byte) (recursion.RecOutput, error) {
	r := NewReader(b)
	mohoPred, err := DecodePredKey(r)
	if err != nil {
		return recursion.RecOutput{}, err
	}
	t, err := DecodeT(r)
	if err != nil {
		return recursion.RecOutput{}, err
	}
	if !r.Done() {
		return recursion.RecOutput{}, ErrTrailingBytes
	}
	return recursion.RecOutput{MohoPred: mohoPred, Transition: t}, nil
}
