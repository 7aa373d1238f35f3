package mmr

import (
	"golang.org/x/crypto/blake2b"
)

// DefaultPersonal is the deployment's default hash personalisation. It is a
// parameter of Hasher, not a compiled-in constant, so callers can supply an
// alternative personalisation per deployment or test.
var DefaultPersonal = []byte("mmrforest-merge-v1")

// Hasher is the merge primitive: a 2-ary hash over two nodes producing a
// single 32-byte node. Merge and MergePeaks are distinguished only by name
// so a deployment can, if it wishes, use a separate personalisation for peak
// bagging; by default both behave identically.
type Hasher interface {
	Merge(lhs, rhs Node) Node
	MergePeaks(lhs, rhs Node) Node
}

// DefaultHasher implements Hasher with a personalised BLAKE2b-256. The
// personalisation is applied as the BLAKE2b key, the same mechanism
// celestiaorg-merkletree uses to derive domain-separated digests.
type DefaultHasher struct {
	personal []byte
}

var _ Hasher = (*DefaultHasher)(nil)

// NewDefaultHasher returns a Hasher personalised with the given bytes. A nil
// or empty personal falls back to DefaultPersonal.
func NewDefaultHasher(personal []byte) *DefaultHasher {
	if len(personal) == 0 {
		personal = DefaultPersonal
	}
	return &DefaultHasher{personal: personal}
}

func (h *DefaultHasher) merge(lhs, rhs Node) Node {
	hh, err := blake2b.New256(h.personal)
	if err != nil {
		// Only returned for an over-long key; DefaultPersonal and any
		// reasonable personalisation are well within the 64-byte limit.
		panic(err)
	}
	hh.Write(lhs.Value())
	hh.Write(rhs.Value())
	return InlineNode(hh.Sum(nil))
}

// Merge produces H(lhs.bytes || rhs.bytes) as a fresh 32-byte node. Because
// the result is always constructed from a new buffer, lhs and rhs are fully
// consumed before any output byte exists; aliasing the inputs with a
// previous merge result is always safe.
func (h *DefaultHasher) Merge(lhs, rhs Node) Node {
	return h.merge(lhs, rhs)
}

// MergePeaks bags two peaks. By default this is identical to Merge.
func (h *DefaultHasher) MergePeaks(lhs, rhs Node) Node {
	return h.merge(lhs, rhs)
}
