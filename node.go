package mmr

// maxInlineNode is the canonical node size: a merge always produces a
// 32-byte value.
const maxInlineNode = 32

// Node is a variable-length byte string, at most 32 bytes in the canonical
// case. It has two internal forms: an inline owned buffer (used for freshly
// merged hashes) and a borrowed slice into a caller-owned buffer (used for
// values read straight off the proof or leaf streams, to avoid copying).
// Both present the same read-only view.
type Node struct {
	inline [maxInlineNode]byte
	length int
	// borrowed, when non-nil, takes priority over inline. It must outlive
	// every Stack entry that references it, in practice the lifetime of a
	// single Verify call.
	borrowed []byte
}

// BorrowedNode wraps a caller-owned slice without copying it. The caller
// must not mutate b for as long as the returned Node (or anything derived
// from it) is in use.
func BorrowedNode(b []byte) Node {
	return Node{borrowed: b, length: len(b)}
}

// InlineNode copies b into a fixed 32-byte buffer. Panics if b is longer
// than 32 bytes; merge results are always exactly 32 bytes, and no other
// caller should need a larger inline node.
func InlineNode(b []byte) Node {
	if len(b) > maxInlineNode {
		panic("mmr: inline node too large")
	}
	var n Node
	copy(n.inline[:], b)
	n.length = len(b)
	return n
}

// Value returns a read-only view of the node's bytes.
func (n Node) Value() []byte {
	if n.borrowed != nil {
		return n.borrowed
	}
	return n.inline[:n.length]
}

// Len returns the node's byte length.
func (n Node) Len() int {
	return n.length
}

// Equal reports whether two nodes have identical byte content.
func (n Node) Equal(other Node) bool {
	a, b := n.Value(), other.Value()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
