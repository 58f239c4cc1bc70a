// Copyright 2025 Certen Protocol
//
// In-process recursion scenario suite for moho-prove -selftest: scenarios
// S1, S2 and S4-S8. The long-chain scenario S3 is not part of this suite.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/moho-network/attest-engine/pkg/inclusion"
	"github.com/moho-network/attest-engine/pkg/innerstate"
	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/predicate"
	"github.com/moho-network/attest-engine/pkg/recursion"
	"github.com/moho-network/attest-engine/pkg/transition"
)

// program is the inner state machine the self-test scenarios run their
// steps through: a toy hash chain standing in for a real guest program.
var program innerstate.HashChain

// stepPredicateIndex mirrors the recursion driver's own fixed position for
// the step predicate field; it is frozen protocol parameter, not a choice
// the harness makes.
const stepPredicateIndex = 1

func ref(b byte) outerstate.Ref {
	var r outerstate.Ref
	r[0] = b
	return r
}

func pred(kind byte) (outerstate.PredKey, error) {
	return outerstate.NewPredKey(kind, nil)
}

// stateCommitmentAndProof builds a fresh OuterState naming stepPred as its
// next predicate and returns both its outer commitment and the
// field-inclusion proof a step out of that state must present. The inner
// commitment itself comes from running program over a one-byte inner state,
// the same capability a real zkVM guest would call to produce it.
func stateCommitmentAndProof(inner byte, stepPred outerstate.PredKey) (outerstate.OuterCommit, inclusion.Proof, error) {
	ic := program.ComputeStateCommitment([]byte{inner})
	s := outerstate.New(ic, stepPred, outerstate.Exports{})
	proof, err := inclusion.Generate(s.FieldRoots(), stepPredicateIndex)
	if err != nil {
		return outerstate.OuterCommit{}, inclusion.Proof{}, err
	}
	return s.ComputeCommitment(), proof, nil
}

type scenario struct {
	name string
	run  func() error
}

// runSelfTest exercises the recursion driver against a small version of
// seven of the protocol's named scenarios: a lone step, a chained step, a
// rejected chain gap, a mismatched step predicate, a rejected witness, a
// mismatched outer predicate, and a same-state no-op. The long-chain
// scenario (S3) is not run here. It never touches stdin/stdout or the
// filesystem.
func runSelfTest(logger *log.Logger) error {
	scenarios := []scenario{
		{"single-step-no-history", scenarioSingleStep},
		{"two-step-chain", scenarioTwoStepChain},
		{"chain-gap-rejected", scenarioChainGapRejected},
		{"wrong-step-predicate-rejected", scenarioWrongStepPredicateRejected},
		{"tampered-witness-rejected", scenarioTamperedWitnessRejected},
		{"wrong-outer-predicate-rejected", scenarioWrongOuterPredicateRejected},
		{"same-state-noop", scenarioSameStateNoOp},
	}
	for _, s := range scenarios {
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		logger.Printf("scenario %q passed", s.name)
	}
	return nil
}

func scenarioSingleStep() error {
	stepPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	commit1, proof, err := stateCommitmentAndProof(1, stepPred)
	if err != nil {
		return err
	}
	from := transition.RefAtt{Reference: ref(1), Commitment: commit1}
	to := transition.RefAtt{Reference: ref(2)}
	step := transition.NewTW(transition.New(from, to), []byte("witness"))

	out, err := recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		Step:     step,
		StepPred: stepPred,
		StepIncl: proof,
	})
	if err != nil {
		return err
	}
	if out.Transition != step.T {
		return fmt.Errorf("got %+v, want %+v", out.Transition, step.T)
	}
	return nil
}

func scenarioTwoStepChain() error {
	stepPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	commit1, _, err := stateCommitmentAndProof(1, stepPred)
	if err != nil {
		return err
	}
	commit2, proof2, err := stateCommitmentAndProof(2, stepPred)
	if err != nil {
		return err
	}
	prevFrom := transition.RefAtt{Reference: ref(1), Commitment: commit1}
	prevTo := transition.RefAtt{Reference: ref(2), Commitment: commit2}
	prev := transition.NewTW(transition.New(prevFrom, prevTo), []byte("prev-witness"))

	stepFrom := transition.RefAtt{Reference: ref(2), Commitment: commit2}
	stepTo := transition.RefAtt{Reference: ref(3)}
	step := transition.NewTW(transition.New(stepFrom, stepTo), []byte("step-witness"))

	out, err := recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		PrevRec:  &prev,
		Step:     step,
		StepPred: stepPred,
		StepIncl: proof2,
	})
	if err != nil {
		return err
	}
	want := transition.New(prevFrom, stepTo)
	if out.Transition != want {
		return fmt.Errorf("got %+v, want %+v", out.Transition, want)
	}
	return nil
}

func scenarioChainGapRejected() error {
	stepPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	prev := transition.NewTW(transition.New(
		transition.RefAtt{Reference: ref(1)},
		transition.RefAtt{Reference: ref(2)},
	), []byte("prev-witness"))

	commit3, proof3, err := stateCommitmentAndProof(3, stepPred)
	if err != nil {
		return err
	}
	stepFrom := transition.RefAtt{Reference: ref(3), Commitment: commit3}
	stepTo := transition.RefAtt{Reference: ref(5)}
	step := transition.NewTW(transition.New(stepFrom, stepTo), []byte("step-witness"))

	_, err = recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		PrevRec:  &prev,
		Step:     step,
		StepPred: stepPred,
		StepIncl: proof3,
	})
	var mismatch *recursion.ChainMismatchError
	if !errors.As(err, &mismatch) {
		return fmt.Errorf("got %T (%v), want *ChainMismatchError", err, err)
	}
	return nil
}

func scenarioWrongStepPredicateRejected() error {
	committedPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	unrelatedPred, err := pred(predicate.KindNeverAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	commit1, proof, err := stateCommitmentAndProof(1, committedPred)
	if err != nil {
		return err
	}
	from := transition.RefAtt{Reference: ref(1), Commitment: commit1}
	to := transition.RefAtt{Reference: ref(2)}
	step := transition.NewTW(transition.New(from, to), []byte("witness"))

	_, err = recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		Step:     step,
		StepPred: unrelatedPred,
		StepIncl: proof,
	})
	if !errors.Is(err, recursion.ErrInvalidMerkleProof) {
		return fmt.Errorf("got %v, want ErrInvalidMerkleProof", err)
	}
	return nil
}

func scenarioTamperedWitnessRejected() error {
	stepPred, err := pred(predicate.KindNeverAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	commit1, proof, err := stateCommitmentAndProof(1, stepPred)
	if err != nil {
		return err
	}
	from := transition.RefAtt{Reference: ref(1), Commitment: commit1}
	to := transition.RefAtt{Reference: ref(2)}
	step := transition.NewTW(transition.New(from, to), []byte("witness"))

	_, err = recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		Step:     step,
		StepPred: stepPred,
		StepIncl: proof,
	})
	if !errors.Is(err, recursion.ErrInvalidIncrementalProof) {
		return fmt.Errorf("got %v, want ErrInvalidIncrementalProof", err)
	}
	return nil
}

func scenarioWrongOuterPredicateRejected() error {
	stepPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindNeverAccept)
	if err != nil {
		return err
	}
	commit1, _, err := stateCommitmentAndProof(1, stepPred)
	if err != nil {
		return err
	}
	prevFrom := transition.RefAtt{Reference: ref(1), Commitment: commit1}
	prevTo := transition.RefAtt{Reference: ref(2)}
	prev := transition.NewTW(transition.New(prevFrom, prevTo), []byte("prev-witness"))

	commit2, proof2, err := stateCommitmentAndProof(2, stepPred)
	if err != nil {
		return err
	}
	stepFrom := transition.RefAtt{Reference: ref(2), Commitment: commit2}
	stepTo := transition.RefAtt{Reference: ref(3)}
	step := transition.NewTW(transition.New(stepFrom, stepTo), []byte("step-witness"))

	_, err = recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		PrevRec:  &prev,
		Step:     step,
		StepPred: stepPred,
		StepIncl: proof2,
	})
	if !errors.Is(err, recursion.ErrInvalidRecursiveProof) {
		return fmt.Errorf("got %v, want ErrInvalidRecursiveProof", err)
	}
	return nil
}

func scenarioSameStateNoOp() error {
	stepPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	mohoPred, err := pred(predicate.KindAlwaysAccept)
	if err != nil {
		return err
	}
	commit5, proof, err := stateCommitmentAndProof(5, stepPred)
	if err != nil {
		return err
	}
	noop := transition.RefAtt{Reference: ref(5), Commitment: commit5}
	step := transition.NewTW(transition.New(noop, noop), []byte("witness"))

	out, err := recursion.Step(context.Background(), recursion.RecInput{
		MohoPred: mohoPred,
		Step:     step,
		StepPred: stepPred,
		StepIncl: proof,
	})
	if err != nil {
		return err
	}
	if !transition.IsNoOp(out.Transition) {
		return fmt.Errorf("expected IsNoOp to hold on the output transition")
	}
	return nil
}
