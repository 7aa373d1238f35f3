package mmrtesting

import (
	"bytes"
	"encoding/binary"

	mmrverify "github.com/mmrforest/mmrverify"
)

// GenerateProof compiles a command stream, proof-node stream and leaf
// stream that prove inclusion of every position in provedPositions against
// b's current size, in the exact wire encoding mmrverify.Verify expects.
// provedPositions need not be pre-sorted; the returned leaf stream is
// always in strict ascending order, as the verifier requires.
func GenerateProof(b *Builder, provedPositions []uint64) (proofBuf, leafBuf []byte, err error) {
	proved := make(map[uint64]bool, len(provedPositions))
	for _, p := range provedPositions {
		if p >= b.size {
			return nil, nil, ErrOutOfRange
		}
		if mmrverify.HeightInTree(p) != 0 {
			return nil, nil, ErrNotALeaf
		}
		proved[p] = true
	}

	g := &generator{builder: b, proved: proved}
	established := false
	for _, pk := range b.peaks() {
		if g.subtreeHasProved(pk.position, pk.height) {
			g.emitSubtree(pk.position, pk.height)
		} else {
			g.emitPushProofNode(b.NodeAt(pk.position).Value())
		}
		g.emitMarkPeak()
		if established {
			g.emitBagPeaks()
		}
		established = true
	}
	return g.proof.Bytes(), g.leaves.Bytes(), nil
}

// generator walks the MMR's peak subtrees and emits the minimal command
// stream that reconstructs the proved leaves up to each peak, supplying
// externally-known node values as proof nodes wherever a subtree contains
// no proved leaf.
type generator struct {
	builder *Builder
	proved  map[uint64]bool
	proof   bytes.Buffer
	leaves  bytes.Buffer
}

// subtreeHasProved reports whether the perfect subtree rooted at (pos,
// height) contains any proved leaf.
func (g *generator) subtreeHasProved(pos, height uint64) bool {
	if height == 0 {
		return g.proved[pos]
	}
	left, right := pos-(uint64(1)<<height), pos-1
	return g.subtreeHasProved(left, height-1) || g.subtreeHasProved(right, height-1)
}

// emitSubtree emits the commands to reconstruct the node at (pos, height)
// on the VM stack, given that subtreeHasProved(pos, height) is true.
func (g *generator) emitSubtree(pos, height uint64) {
	if height == 0 {
		g.emitPushLeaf(pos)
		return
	}
	left, right := pos-(uint64(1)<<height), pos-1
	if g.subtreeHasProved(left, height-1) {
		g.emitSubtree(left, height-1)
	} else {
		g.emitPushProofNode(g.builder.NodeAt(left).Value())
	}
	if g.subtreeHasProved(right, height-1) {
		g.emitSubtree(right, height-1)
	} else {
		g.emitPushProofNode(g.builder.NodeAt(right).Value())
	}
	g.emitMerge()
}

func (g *generator) emitPushLeaf(position uint64) {
	g.proof.WriteByte(1)

	payload := g.builder.NodeAt(position).Value()
	var posBytes [8]byte
	binary.LittleEndian.PutUint64(posBytes[:], position)
	g.leaves.Write(posBytes[:])

	var lenBytes [2]byte
	binary.LittleEndian.PutUint16(lenBytes[:], uint16(len(payload)))
	g.leaves.Write(lenBytes[:])
	g.leaves.Write(payload)
}

func (g *generator) emitPushProofNode(node []byte) {
	g.proof.WriteByte(2)
	var lenBytes [2]byte
	binary.LittleEndian.PutUint16(lenBytes[:], uint16(len(node)))
	g.proof.Write(lenBytes[:])
	g.proof.Write(node)
}

func (g *generator) emitMerge()    { g.proof.WriteByte(3) }
func (g *generator) emitBagPeaks() { g.proof.WriteByte(4) }
func (g *generator) emitMarkPeak() { g.proof.WriteByte(5) }
