// Copyright 2025 Certen Protocol
//
// Merkle Mountain Range accumulator for export entries.

package outerstate

import "crypto/sha256"

// peak is one entry in an MMR's peak list: a subtree root together with its
// height (2^height leaves merged into it).
type peak struct {
	hash   Hash
	height uint32
}

// MMR is an append-only Merkle mountain range of 32-byte entry digests. It
// maintains only the current peaks, the minimum state needed to append a new
// entry or fold the whole range into a single root; it does not retain
// entries, so it yields no per-entry inclusion proof on its own - the outer
// tree's field-inclusion scheme (package inclusion) covers the commitments
// this package exports, not per-entry export proofs.
type MMR struct {
	peaks []peak
	size  uint64
}

// Size reports the number of entries appended so far.
func (m *MMR) Size() uint64 {
	return m.size
}

// Append adds entryDigest as the newest leaf, merging peaks of equal height
// from the tail of the peak list the way a binary counter carries - the
// number of peaks left after an append always equals the number of set bits
// in the new size.
func (m *MMR) Append(entryDigest Hash) error {
	if m.size >= MaxMMREntries {
		return ErrMMRCapacityExceeded
	}
	m.peaks = append(m.peaks, peak{hash: entryDigest, height: 0})
	m.size++
	for len(m.peaks) >= 2 {
		n := len(m.peaks)
		last, prev := m.peaks[n-1], m.peaks[n-2]
		if last.height != prev.height {
			break
		}
		merged := peak{hash: hashPair(prev.hash, last.hash), height: last.height + 1}
		m.peaks = append(m.peaks[:n-2], merged)
	}
	return nil
}

// Root bags the current peaks into a single 32-byte digest, right to left
// (the newest, shortest peak seeds the accumulator). An empty MMR roots to
// the hash of the empty buffer.
func (m *MMR) Root() Hash {
	if len(m.peaks) == 0 {
		return Hash(sha256.Sum256(nil))
	}
	acc := m.peaks[len(m.peaks)-1].hash
	for i := len(m.peaks) - 2; i >= 0; i-- {
		acc = hashPair(m.peaks[i].hash, acc)
	}
	return acc
}

// Snapshot returns the current peak hashes, ordered oldest/tallest first,
// together with the entry count. Sufficient to reconstruct an identical MMR
// via MMRFromSnapshot - peak heights are not stored separately because they
// are fully determined by size's binary representation.
func (m *MMR) Snapshot() ([]Hash, uint64) {
	hashes := make([]Hash, len(m.peaks))
	for i, p := range m.peaks {
		hashes[i] = p.hash
	}
	return hashes, m.size
}

// peakHeightsForSize returns the height of each peak an MMR of the given
// size must have, most significant bit first - the same order Append
// leaves peaks in.
func peakHeightsForSize(size uint64) []uint32 {
	var heights []uint32
	for bit := 63; bit >= 0; bit-- {
		if size&(1<<uint(bit)) != 0 {
			heights = append(heights, uint32(bit))
		}
	}
	return heights
}

// MMRFromSnapshot reconstructs an MMR from peak hashes and a size
// previously produced by Snapshot.
func MMRFromSnapshot(peakHashes []Hash, size uint64) (MMR, error) {
	heights := peakHeightsForSize(size)
	if len(heights) != len(peakHashes) {
		return MMR{}, ErrMalformedMMRSnapshot
	}
	peaks := make([]peak, len(peakHashes))
	for i, h := range peakHashes {
		peaks[i] = peak{hash: h, height: heights[i]}
	}
	return MMR{peaks: peaks, size: size}, nil
}
