package mmr

import (
	"encoding/binary"
	"testing"
)

func TestProofReaderCommandsAndNodes(t *testing.T) {
	var buf []byte
	buf = append(buf, cmdPushProof)
	buf = append(buf, 0x03, 0x00)
	buf = append(buf, 'a', 'b', 'c')
	buf = append(buf, cmdMerge)

	r := NewProofReader(buf)

	cmd, ok := r.ReadCommand()
	if !ok || cmd != cmdPushProof {
		t.Fatalf("ReadCommand() = (%d, %v), want (%d, true)", cmd, ok, cmdPushProof)
	}
	node, err := r.ReadProofNode()
	if err != nil {
		t.Fatalf("ReadProofNode() error = %v", err)
	}
	if string(node.Value()) != "abc" {
		t.Fatalf("ReadProofNode() = %q, want %q", node.Value(), "abc")
	}
	cmd, ok = r.ReadCommand()
	if !ok || cmd != cmdMerge {
		t.Fatalf("ReadCommand() = (%d, %v), want (%d, true)", cmd, ok, cmdMerge)
	}
	if _, ok := r.ReadCommand(); ok {
		t.Fatalf("ReadCommand() at EOF should return ok=false")
	}
}

func TestProofReaderTruncatedLengthPrefix(t *testing.T) {
	r := NewProofReader([]byte{0x01})
	if _, err := r.ReadProofNode(); err != ErrNodeEOF {
		t.Fatalf("ReadProofNode() with truncated length prefix = %v, want ErrNodeEOF", err)
	}
}

func TestProofReaderDeclaredLengthExceedsBuffer(t *testing.T) {
	var buf []byte
	buf = append(buf, 0x05, 0x00)
	buf = append(buf, 'a', 'b')
	r := NewProofReader(buf)
	if _, err := r.ReadProofNode(); err != ErrNodeEOF {
		t.Fatalf("ReadProofNode() with declared length > remaining = %v, want ErrNodeEOF", err)
	}
}

func TestLeafStreamReaderRoundTrip(t *testing.T) {
	var buf []byte
	var posBytes [8]byte
	binary.LittleEndian.PutUint64(posBytes[:], 42)
	buf = append(buf, posBytes[:]...)
	buf = append(buf, 0x04, 0x00)
	buf = append(buf, "leaf"...)

	r := NewLeafStreamReader(buf)
	pos, node, ok, err := r.ReadLeaf()
	if err != nil {
		t.Fatalf("ReadLeaf() error = %v", err)
	}
	if !ok || pos != 42 || string(node.Value()) != "leaf" {
		t.Fatalf("ReadLeaf() = (%d, %q, %v), want (42, \"leaf\", true)", pos, node.Value(), ok)
	}

	pos, _, ok, err = r.ReadLeaf()
	if err != nil || ok || pos != 0 {
		t.Fatalf("ReadLeaf() at clean EOF = (%d, %v, %v), want (0, false, nil)", pos, ok, err)
	}
}

func TestLeafStreamReaderTruncatedPosition(t *testing.T) {
	r := NewLeafStreamReader([]byte{1, 2, 3})
	if _, _, _, err := r.ReadLeaf(); err != ErrLeafEOF {
		t.Fatalf("ReadLeaf() with truncated position = %v, want ErrLeafEOF", err)
	}
}

func TestLeafStreamReaderTruncatedPayload(t *testing.T) {
	var buf []byte
	var posBytes [8]byte
	binary.LittleEndian.PutUint64(posBytes[:], 1)
	buf = append(buf, posBytes[:]...)
	buf = append(buf, 0x10, 0x00)
	buf = append(buf, "short"...)

	r := NewLeafStreamReader(buf)
	if _, _, _, err := r.ReadLeaf(); err != ErrNodeEOF {
		t.Fatalf("ReadLeaf() with declared length > remaining = %v, want ErrNodeEOF", err)
	}
}

func TestLeafStreamReaderIndependentCursorFromProofReader(t *testing.T) {
	proofBuf := []byte{cmdPushLeaf}
	var leafBuf []byte
	var posBytes [8]byte
	binary.LittleEndian.PutUint64(posBytes[:], 0)
	leafBuf = append(leafBuf, posBytes[:]...)
	leafBuf = append(leafBuf, 0x01, 0x00)
	leafBuf = append(leafBuf, 'x')

	pr := NewProofReader(proofBuf)
	lr := NewLeafStreamReader(leafBuf)

	if cmd, ok := pr.ReadCommand(); !ok || cmd != cmdPushLeaf {
		t.Fatalf("unexpected proof stream state")
	}
	if _, _, ok, err := lr.ReadLeaf(); err != nil || !ok {
		t.Fatalf("leaf stream should be unaffected by the proof stream's cursor: err=%v ok=%v", err, ok)
	}
}
