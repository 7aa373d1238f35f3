// Package mmrtesting builds small in-memory MMRs and compiles inclusion
// proofs for them in the exact wire format github.com/mmrforest/mmrverify
// expects. It exists purely to exercise the verifier in tests: the shipped
// module has no MMR-building or proof-generation operation of its own.
package mmrtesting

import (
	"gitlab.com/NebulousLabs/errors"

	mmrverify "github.com/mmrforest/mmrverify"
)

// ErrNotALeaf is returned by GenerateProof when asked to prove a position
// that isn't a height-0 node.
var ErrNotALeaf = errors.New("mmrtesting: position is not a leaf")

// ErrOutOfRange is returned by GenerateProof when asked to prove a position
// at or beyond the current size.
var ErrOutOfRange = errors.New("mmrtesting: position out of range")

// Builder accumulates leaves into an MMR, backfilling interior nodes the
// same way AddHashedLeaf does: after appending a node, while the next
// position would sit higher in the tree than the node just added, merge the
// two most recent subtrees and append the result.
type Builder struct {
	hasher mmrverify.Hasher
	nodes  map[uint64]mmrverify.Node
	size   uint64
}

// NewBuilder returns an empty Builder using hasher for all merges.
func NewBuilder(hasher mmrverify.Hasher) *Builder {
	return &Builder{hasher: hasher, nodes: make(map[uint64]mmrverify.Node)}
}

// Size returns the current MMR size (one past the last occupied position).
func (b *Builder) Size() uint64 {
	return b.size
}

// AppendLeaf adds a single leaf and backfills any interior nodes it
// completes, returning the leaf's own position.
func (b *Builder) AppendLeaf(payload []byte) uint64 {
	leafPos := b.size
	b.nodes[leafPos] = mmrverify.InlineNode(payload)
	b.size++

	height := uint64(0)
	for mmrverify.HeightInTree(b.size) > height {
		left := b.size - mmrverify.ParentOffset(height)
		right := b.size - 1
		merged := b.hasher.Merge(b.nodes[left], b.nodes[right])
		b.nodes[b.size] = merged
		b.size++
		height++
	}
	return leafPos
}

// NodeAt returns the node value stored at position pos. It panics if pos
// has never been written; callers are expected to stay within [0, Size()).
func (b *Builder) NodeAt(pos uint64) mmrverify.Node {
	n, ok := b.nodes[pos]
	if !ok {
		panic("mmrtesting: position not populated")
	}
	return n
}

// peakInfo describes one accumulator peak.
type peakInfo struct {
	position uint64
	height   uint64
}

// peaks enumerates the MMR's peaks left (highest) to right (smallest).
func (b *Builder) peaks() []peakInfo {
	if b.size == 0 {
		return nil
	}
	var out []peakInfo
	pos, height := mmrverify.LeftPeak(b.size)
	for {
		out = append(out, peakInfo{position: pos, height: height})
		var ok bool
		pos, height, ok = mmrverify.RightPeak(pos, height, b.size)
		if !ok {
			break
		}
	}
	return out
}

// Root returns the bagged root of the whole MMR at its current size, using
// the same top-first bagging order the verifier's opBagPeaks implements:
// each newly established peak is merged as the "top" argument against the
// accumulator built from every peak to its left.
func (b *Builder) Root() mmrverify.Node {
	peaks := b.peaks()
	if len(peaks) == 0 {
		return mmrverify.Node{}
	}
	acc := b.nodes[peaks[0].position]
	for _, pk := range peaks[1:] {
		acc = b.hasher.MergePeaks(b.nodes[pk.position], acc)
	}
	return acc
}
