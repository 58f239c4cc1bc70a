// Copyright 2025 Certen Protocol
//
// Codec round-trip tests.

package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/moho-network/attest-engine/pkg/inclusion"
	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/recursion"
	"github.com/moho-network/attest-engine/pkg/transition"
)

func samplePredKey(t *testing.T, kind byte, cond []byte) outerstate.PredKey {
	t.Helper()
	p, err := outerstate.NewPredKey(kind, cond)
	if err != nil {
		t.Fatalf("NewPredKey: %v", err)
	}
	return p
}

func sampleOuterState(t *testing.T) outerstate.OuterState {
	t.Helper()
	var inner outerstate.InnerCommit
	inner[0] = 0x42
	pred := samplePredKey(t, 3, []byte("condition-bytes"))
	var exports outerstate.Exports
	var d1, d2 outerstate.Hash
	d1[0], d2[0] = 1, 2
	if err := exports.AddEntry(7, d1); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if err := exports.AddEntry(7, d2); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if err := exports.AddEntry(9, d1); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	return outerstate.New(inner, pred, exports)
}

func TestOuterStateRoundTrip(t *testing.T) {
	s := sampleOuterState(t)
	encoded := Encode(s)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Inner != s.Inner {
		t.Fatalf("Inner mismatch")
	}
	if !decoded.NextPred.Equal(s.NextPred) {
		t.Fatalf("NextPred mismatch")
	}
	if decoded.ComputeCommitment() != (&s).ComputeCommitment() {
		t.Fatalf("round-tripped state does not reproduce the original commitment")
	}
	if diff := cmp.Diff(len(decoded.Exports.Containers), len(s.Exports.Containers)); diff != "" {
		t.Fatalf("container count mismatch: %s", diff)
	}
}

func TestPredKeyRoundTrip(t *testing.T) {
	p := samplePredKey(t, 9, []byte("abcxyz"))
	w := NewWriter()
	EncodePredKey(w, p)
	decoded, err := DecodePredKey(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodePredKey: %v", err)
	}
	if !decoded.Equal(p) {
		t.Fatalf("got %+v, want %+v", decoded, p)
	}
}

func TestDecodePredKeyRejectsOverlongCondition(t *testing.T) {
	w := NewWriter()
	w.PutByte(1)
	w.PutBytes(make([]byte, outerstate.MaxConditionLen+1))
	if _, err := DecodePredKey(NewReader(w.Bytes())); err != ErrConditionTooLong {
		t.Fatalf("got %v, want ErrConditionTooLong", err)
	}
}

func TestRecInputRoundTripWithPrevRec(t *testing.T) {
	var from, to, prevFrom transition.RefAtt
	from.Reference[0], from.Commitment[0] = 1, 1
	to.Reference[0], to.Commitment[0] = 2, 2
	prevFrom.Reference[0], prevFrom.Commitment[0] = 0, 0

	prevTW := transition.NewTW(transition.New(prevFrom, from), []byte("prev-witness"))
	stepTW := transition.NewTW(transition.New(from, to), []byte("step-witness"))

	in := recursion.RecInput{
		MohoPred: samplePredKey(t, 1, nil),
		PrevRec:  &prevTW,
		Step:     stepTW,
		StepPred: samplePredKey(t, 2, []byte("cond")),
		StepIncl: inclusion.Proof{Branch: []outerstate.Hash{{0xAA}, {0xBB}}, Index: 1},
	}

	encoded := EncodeRecInput(in)
	decoded, err := DecodeRecInput(encoded)
	if err != nil {
		t.Fatalf("DecodeRecInput: %v", err)
	}
	if decoded.PrevRec == nil {
		t.Fatalf("expected PrevRec to round-trip as present")
	}
	if diff := cmp.Diff(*decoded.PrevRec, prevTW); diff != "" {
		t.Fatalf("PrevRec mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(decoded.Step, stepTW); diff != "" {
		t.Fatalf("Step mismatch (-got +want):\n%s", diff)
	}
	if !decoded.MohoPred.Equal(in.MohoPred) || !decoded.StepPred.Equal(in.StepPred) {
		t.Fatalf("predicate key mismatch")
	}
	if diff := cmp.Diff(decoded.StepIncl, in.StepIncl); diff != "" {
		t.Fatalf("StepIncl mismatch (-got +want):\n%s", diff)
	}
}

func TestRecInputRoundTripWithoutPrevRec(t *testing.T) {
	var from, to transition.RefAtt
	from.Reference[0], from.Commitment[0] = 1, 1
	to.Reference[0], to.Commitment[0] = 2, 2
	stepTW := transition.NewTW(transition.New(from, to), []byte("step-witness"))

	in := recursion.RecInput{
		MohoPred: samplePredKey(t, 1, nil),
		PrevRec:  nil,
		Step:     stepTW,
		StepPred: samplePredKey(t, 2, nil),
		StepIncl: inclusion.Proof{Branch: nil, Index: 1},
	}

	decoded, err := DecodeRecInput(EncodeRecInput(in))
	if err != nil {
		t.Fatalf("DecodeRecInput: %v", err)
	}
	if decoded.PrevRec != nil {
		t.Fatalf("expected PrevRec to round-trip as absent, got %+v", decoded.PrevRec)
	}
}

func TestRecOutputRoundTrip(t *testing.T) {
	var from, to transition.RefAtt
	from.Reference[0] = 5
	to.Reference[0] = 6
	out := recursion.RecOutput{
		MohoPred:   samplePredKey(t, 4, []byte("cond")),
		Transition: transition.New(from, to),
	}
	decoded, err := DecodeRecOutput(EncodeRecOutput(out))
	if err != nil {
		t.Fatalf("DecodeRecOutput: %v", err)
	}
	if decoded.Transition != out.Transition {
		t.Fatalf("Transition mismatch: got %+v, want %+v", decoded.Transition, out.Transition)
	}
	if !decoded.MohoPred.Equal(out.MohoPred) {
		t.Fatalf("MohoPred mismatch")
	}
}

func TestDecodeRecInputRejectsInvalidOptionTag(t *testing.T) {
	w := NewWriter()
	EncodePredKey(w, samplePredKey(t, 1, nil))
	w.PutByte(2) // neither optionAbsent nor optionPresent
	if _, err := DecodeRecInput(w.Bytes()); err != ErrInvalidOptionTag {
		t.Fatalf("got %v, want ErrInvalidOptionTag", err)
	}
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	s := sampleOuterState(t)
	encoded := Encode(s)
	if _, err := Decode(encoded[:len(encoded)-1]); err == nil {
		t.Fatalf("expected an error decoding truncated input")
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	s := sampleOuterState(t)
	encoded := append(Encode(s), 0x00)
	if _, err := Decode(encoded); err != ErrTrailingBytes {
		t.Fatalf("got %v, want ErrTrailingBytes", err)
	}
}
