// Copyright 2025 Certen Protocol
//
// Transition tests.

package transition

import (
	"testing"

	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/predicate"
)

func refAtt(ref, commit byte) RefAtt {
	var r RefAtt
	r.Reference[0] = ref
	r.Commitment[0] = commit
	return r
}

func TestChainSucceedsOnMatchingEndpoints(t *testing.T) {
	t1 := New(refAtt(1, 1), refAtt(2, 2))
	t2 := New(refAtt(2, 2), refAtt(3, 3))
	out, err := Chain(t1, t2)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	want := New(refAtt(1, 1), refAtt(3, 3))
	if out != want {
		t.Fatalf("got %+v, want %+v", out, want)
	}
}

func TestChainFailsOnGap(t *testing.T) {
	t1 := New(refAtt(1, 1), refAtt(2, 2))
	t2 := New(refAtt(3, 3), refAtt(5, 5))
	_, err := Chain(t1, t2)
	chainErr, ok := err.(*ChainError)
	if !ok {
		t.Fatalf("got %T, want *ChainError", err)
	}
	if chainErr.FirstEnd != t1.To || chainErr.SecondStart != t2.From {
		t.Fatalf("ChainError carries wrong endpoints: %+v", chainErr)
	}
}

func TestChainIdentityForNoOp(t *testing.T) {
	noop := New(refAtt(5, 5), refAtt(5, 5))
	other := New(refAtt(5, 5), refAtt(9, 9))

	out, err := Chain(noop, other)
	if err != nil {
		t.Fatalf("Chain(noop, other): %v", err)
	}
	if out != other {
		t.Fatalf("chaining a no-op on the left was not the identity: got %+v", out)
	}

	out2, err := Chain(other, New(refAtt(9, 9), refAtt(9, 9)))
	if err != nil {
		t.Fatalf("Chain(other, noop): %v", err)
	}
	if out2 != other {
		t.Fatalf("chaining a no-op on the right was not the identity: got %+v", out2)
	}
}

func TestChainAssociativity(t *testing.T) {
	t1 := New(refAtt(1, 1), refAtt(2, 2))
	t2 := New(refAtt(2, 2), refAtt(3, 3))
	t3 := New(refAtt(3, 3), refAtt(4, 4))

	left, err := Chain(t1, t2)
	if err != nil {
		t.Fatalf("Chain(t1,t2): %v", err)
	}
	left, err = Chain(left, t3)
	if err != nil {
		t.Fatalf("Chain(chain(t1,t2),t3): %v", err)
	}

	right, err := Chain(t2, t3)
	if err != nil {
		t.Fatalf("Chain(t2,t3): %v", err)
	}
	right, err = Chain(t1, right)
	if err != nil {
		t.Fatalf("Chain(t1,chain(t2,t3)): %v", err)
	}

	if left != right {
		t.Fatalf("associativity violated: %+v != %+v", left, right)
	}
}

func TestIsNoOp(t *testing.T) {
	if !IsNoOp(New(refAtt(5, 5), refAtt(5, 5))) {
		t.Fatalf("expected IsNoOp true for equal endpoints")
	}
	if IsNoOp(New(refAtt(5, 5), refAtt(6, 6))) {
		t.Fatalf("expected IsNoOp false for differing endpoints")
	}
}

func TestTWVerify(t *testing.T) {
	tw := NewTW(New(refAtt(1, 1), refAtt(2, 2)), []byte("witness"))
	always, err := outerstate.NewPredKey(predicate.KindAlwaysAccept, nil)
	if err != nil {
		t.Fatalf("NewPredKey: %v", err)
	}
	if err := tw.Verify(always, predicate.Default); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	never, err := outerstate.NewPredKey(predicate.KindNeverAccept, nil)
	if err != nil {
		t.Fatalf("NewPredKey: %v", err)
	}
	if err := tw.Verify(never, predicate.Default); err != ErrInvalidStepProof {
		t.Fatalf("got %v, want ErrInvalidStepProof", err)
	}
}

func TestIntoParts(t *testing.T) {
	tr := New(refAtt(1, 1), refAtt(2, 2))
	tw := NewTW(tr, []byte("w"))
	gotT, gotW := tw.IntoParts()
	if gotT != tr || string(gotW) != "w" {
		t.Fatalf("IntoParts returned unexpected values")
	}
}
