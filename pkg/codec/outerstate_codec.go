// Copyright 2025 Certen Protocol
//
// Canonical encode/decode for Container, Exports, and OuterState.

package codec

import "github.com/moho-network/attest-engine/pkg/outerstate"

// EncodeContainer appends c's canonical encoding to w: the id byte, the
// extra-data array inline, the MMR's peak-hash snapshot as a length-prefixed
// sequence, and the entry count.
func EncodeContainer(w *Writer, c outerstate.Container) {
	w.PutByte(c.ID)
	putHash(w, c.ExtraData)
	peaks, size := c.Entries.Snapshot()
	w.PutUint32(uint32(len(peaks)))
	for _, p := range peaks {
		putHash(w, p)
	}
	w.PutUint64(size)
}

// DecodeContainer reads a Container from r.
func DecodeContainer(r *Reader) (outerstate.Container, error) {
	id, err := r.GetByte()
	if err != nil {
		return outerstate.Container{}, err
	}
	extra, err := getHash(r)
	if err != nil {
		return outerstate.Container{}, err
	}
	peakCount, err := r.GetUint32()
	if err != nil {
		return outerstate.Container{}, err
	}
	peaks := make([]outerstate.Hash, peakCount)
	for i := range peaks {
		h, err := getHash(r)
		if err != nil {
			return outerstate.Container{}, err
		}
		peaks[i] = h
	}
	size, err := r.GetUint64()
	if err != nil {
		return outerstate.Container{}, err
	}
	mmr, err := outerstate.MMRFromSnapshot(peaks, size)
	if err != nil {
		return outerstate.Container{}, err
	}
	return outerstate.Container{ID: id, ExtraData: extra, Entries: mmr}, nil
}

// EncodeExports appends e's canonical encoding to w: a length-prefixed
// sequence of encoded containers in stored (first-appearance) order.
func EncodeExports(w *Writer, e outerstate.Exports) {
	w.PutUint32(uint32(len(e.Containers)))
	for _, c := range e.Containers {
		EncodeContainer(w, c)
	}
}

// DecodeExports reads an Exports from r.
func DecodeExports(r *Reader) (outerstate.Exports, error) {
	n, err := r.GetUint32()
	if err != nil {
		return outerstate.Exports{}, err
	}
	containers := make([]outerstate.Container, n)
	for i := range containers {
		c, err := DecodeContainer(r)
		if err != nil {
			return outerstate.Exports{}, err
		}
		containers[i] = c
	}
	return outerstate.Exports{Containers: containers}, nil
}

// EncodeOuterState appends s's canonical encoding to w: inner (inline),
// next_pred, then exports.
func EncodeOuterState(w *Writer, s outerstate.OuterState) {
	putHash(w, outerstate.Hash(s.Inner))
	EncodePredKey(w, s.NextPred)
	EncodeExports(w, s.Exports)
}

// DecodeOuterState reads an OuterState from r.
func DecodeOuterState(r *Reader) (outerstate.OuterState, error) {
	inner, err := getHash(r)
	if err != nil {
		return outerstate.OuterState{}, err
	}
	pred, err := DecodePredKey(r)
	if err != nil {
		return outerstate.OuterState{}, err
	}
	exports, err := DecodeExports(r)
	if err != nil {
		return outerstate.OuterState{}, err
	}
	return outerstate.New(outerstate.InnerCommit(inner), pred, exports), nil
}

// Encode returns the canonical encoding of an OuterState.
func Encode(s outerstate.OuterState) []byte {
	w := NewWriter()
	EncodeOuterState(w, s)
	return w.Bytes()
}

// Decode parses the canonical encoding of an OuterState, requiring the
// input to be fully consumed.
func Decode(b []byte) (outerstate.OuterState, error) {
	r := NewReader(b)
	s, err := DecodeOuterState(r)
	if err != nil {
		return outerstate.OuterState{}, err
	}
	if !r.Done() {
		return outerstate.OuterState{}, ErrTrailingBytes
	}
	return s, nil
}
