// Copyright 2025 Certen Protocol
//
// Canonical encode/decode for PredKey, RefAtt, T, and TW.

package codec

import (
	"github.com/moho-network/attest-engine/pkg/outerstate"
	"github.com/moho-network/attest-engine/pkg/transition"
)

func putHash(w *Writer, h outerstate.Hash) {
	w.PutFixed(h[:])
}

func getHash(r *Reader) (outerstate.Hash, error) {
	b, err := r.GetFixed(outerstate.HashSize)
	if err != nil {
		return outerstate.Hash{}, err
	}
	var h outerstate.Hash
	copy(h[:], b)
	return h, nil
}

// EncodePredKey appends pred's canonical encoding to w: the kind byte
// followed by the condition as a length-prefixed buffer.
func EncodePredKey(w *Writer, pred outerstate.PredKey) {
	w.PutByte(pred.Kind)
	w.PutBytes(pred.Condition)
}

// DecodePredKey reads a PredKey from r, rejecting a condition that exceeds
// outerstate.MaxConditionLen - the canonical bound is enforced here too,
// not only at construction.
func DecodePredKey(r *Reader) (outerstate.PredKey, error) {
	kind, err := r.GetByte()
	if err != nil {
		return outerstate.PredKey{}, err
	}
	cond, err := r.GetBytes()
	if err != nil {
		return outerstate.PredKey{}, err
	}
	if len(cond) > outerstate.MaxConditionLen {
		return outerstate.PredKey{}, ErrConditionTooLong
	}
	return outerstate.PredKey{Kind: kind, Condition: cond}, nil
}

// EncodeRefAtt appends ra's canonical encoding to w: the reference then the
// commitment, each an inline 32-byte array.
func EncodeRefAtt(w *Writer, ra transition.RefAtt) {
	putHash(w, outerstate.Hash(ra.Reference))
	putHash(w, outerstate.Hash(ra.Commitment))
}

// DecodeRefAtt reads a RefAtt from r.
func DecodeRefAtt(r *Reader) (transition.RefAtt, error) {
	ref, err := getHash(r)
	if err != nil {
		return transition.RefAtt{}, err
	}
	commit, err := getHash(r)
	if err != nil {
		return transition.RefAtt{}, err
	}
	return transition.RefAtt{
		Reference:  outerstate.Ref(ref),
		Commitment: outerstate.OuterCommit(commit),
	}, nil
}

// EncodeT appends t's canonical encoding to w: From then To, each an inline
// RefAtt.
func EncodeT(w *Writer, t transition.T) {
	EncodeRefAtt(w, t.From)
	EncodeRefAtt(w, t.To)
}

// DecodeT reads a T from r.
func DecodeT(r *Reader) (transition.T, error) {
	from, err := DecodeRefAtt(r)
	if err != nil {
		return transition.T{}, err
	}
	to, err := DecodeRefAtt(r)
	if err != nil {
		return transition.T{}, err
	}
	return transition.New(from, to), nil
}

// EncodeTW appends tw's canonical encoding to w: T then the witness as a
// length-prefixed buffer.
func EncodeTW(w *Writer, tw transition.TW) {
	EncodeT(w, tw.T)
	w.PutBytes(tw.Witness)
}

// DecodeTW reads a TW from r.
func DecodeTW(r *Reader) (transition.TW, error) {
	t, err := DecodeT(r)
	if err != nil {
		return transition.TW{}, err
	}
	witness, err := r.GetBytes()
	if err != nil {
		return transition.TW{}, err
	}
	return transition.NewTW(t, witness), nil
}
