package mmrtesting

import (
	"gitlab.com/NebulousLabs/fastrand"

	mmrverify "github.com/mmrforest/mmrverify"
)

// RandomMMR builds a Builder with numLeaves random 32-byte leaves, in the
// style celestiaorg-merkletree's tests use fastrand to fabricate Merkle
// fixtures.
func RandomMMR(hasher mmrverify.Hasher, numLeaves int) (*Builder, []uint64) {
	b := NewBuilder(hasher)
	positions := make([]uint64, 0, numLeaves)
	for i := 0; i < numLeaves; i++ {
		positions = append(positions, b.AppendLeaf(fastrand.Bytes(32)))
	}
	return b, positions
}

// RandomSubset returns a random non-empty, strictly ascending subset of
// positions.
func RandomSubset(positions []uint64) []uint64 {
	if len(positions) == 0 {
		return nil
	}
	var subset []uint64
	for len(subset) == 0 {
		subset = subset[:0]
		for _, p := range positions {
			if fastrand.Intn(2) == 0 {
				subset = append(subset, p)
			}
		}
	}
	return subset
}

// FlipBit returns a copy of buf with bit (bitIndex % (8*len(buf))) inverted.
// Used by soundness tests to corrupt a single byte of a proof/leaf stream.
func FlipBit(buf []byte, bitIndex int) []byte {
	out := append([]byte(nil), buf...)
	if len(out) == 0 {
		return out
	}
	i := bitIndex % (8 * len(out))
	out[i/8] ^= 1 << uint(i%8)
	return out
}
