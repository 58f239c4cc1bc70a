// Copyright 2025 Certen Protocol
//
// Package recursion implements the top-level recursion driver: the
// algorithm that ties the outer state container, field-inclusion proof,
// predicate verifier, and transition algebra together for one recursion
// step. It is a pure, single-shot function with no concurrency and no
// persistent state - the zkVM guest's entire job, once its input has been
// decoded.
package recursion

import (
	"context"

	"github.com/moho-network/attest-engine/pkg/inclusion"
	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/predicate"
	"github.com/moho-network/attest-engine/pkg/transition"
)

// stepPredicateFieldIndex is the outer tree leaf position a step predicate
// must be included at. Frozen across every revision of the protocol;
// Step refuses to verify proofs reconstructing the root from any other
// position.
const stepPredicateFieldIndex = 1

// RecInput is the driver's input for one recursion step.
type RecInput struct {
	MohoPred outerstate.PredKey
	PrevRec  *transition.TW
	Step     transition.TW
	StepPred outerstate.PredKey
	StepIncl inclusion.Proof
}

// RecOutput is the driver's output for one recursion step.
type RecOutput struct {
	MohoPred   outerstate.PredKey
	Transition transition.T
}

// Step runs the four-step recursion algorithm, failing fast with the first
// error encountered and producing no partial output. ctx is accepted so the
// driver's signature matches this repository's blocking-operation
// convention; it carries no cancellation semantics here, since the core has
// none to offer.
func Step(ctx context.Context, in RecInput) (RecOutput, error) {
	return StepWith(ctx, in, predicate.Default)
}

// StepWith is Step parameterized on the predicate verifier, so tests can
// substitute a stub Verifier without going through the concrete kinds in
// package predicate.
func StepWith(_ context.Context, in RecInput, verifier predicate.Verifier) (RecOutput, error) {
	// 1. Predicate inclusion: the step predicate must be committed by the
	// outer state that existed before the step.
	if in.StepIncl.Index != stepPredicateFieldIndex {
		return RecOutput{}, ErrInvalidMerkleProof
	}
	leaf := outerstate.HashPredKey(in.StepPred)
	if !inclusion.Verify(in.Step.T.From.Commitment, in.StepIncl, leaf) {
		return RecOutput{}, ErrInvalidMerkleProof
	}

	// 2. Step proof verification: the step predicate must accept the
	// step's transition under its witness.
	if err := in.Step.Verify(in.StepPred, verifier); err != nil {
		return RecOutput{}, ErrInvalidIncrementalProof
	}

	// 3. Recursion case.
	if in.PrevRec == nil {
		return RecOutput{MohoPred: in.MohoPred, Transition: in.Step.T}, nil
	}

	prev := *in.PrevRec
	if err := prev.Verify(in.MohoPred, verifier); err != nil {
		return RecOutput{}, ErrInvalidRecursiveProof
	}

	chained, err := transition.Chain(prev.T, in.Step.T)
	if err != nil {
		chainErr, ok := err.(*transition.ChainError)
		if !ok {
			return RecOutput{}, ErrInvalidChain
		}
		return RecOutput{}, &ChainMismatchError{
			FirstEnd:    chainErr.FirstEnd,
			SecondStart: chainErr.SecondStart,
		}
	}

	// 4. Emit output. moho_pred is propagated unchanged: the zkVM cannot
	// hardcode its own program-id inside the circuit, so a consumer
	// verifies both the proof and that moho_pred is the expected one.
	return RecOutput{MohoPred: in.MohoPred, Transition: chained}, nil
}
