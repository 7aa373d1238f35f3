package mmr

import (
	"bytes"
	"testing"
)

func TestDefaultHasherMergeDeterministic(t *testing.T) {
	h := NewDefaultHasher(nil)
	a := InlineNode([]byte("leaf-a"))
	b := InlineNode([]byte("leaf-b"))

	got1 := h.Merge(a, b)
	got2 := h.Merge(a, b)
	if !got1.Equal(got2) {
		t.Fatalf("Merge is not deterministic for identical inputs")
	}
	if got1.Len() != 32 {
		t.Fatalf("Merge result length = %d, want 32", got1.Len())
	}
	if bytes.Equal(h.Merge(b, a).Value(), got1.Value()) {
		t.Fatalf("Merge(a,b) and Merge(b,a) must differ")
	}
}

func TestDefaultHasherPersonalisationChangesOutput(t *testing.T) {
	a := InlineNode([]byte("x"))
	b := InlineNode([]byte("y"))

	h1 := NewDefaultHasher([]byte("personal-one"))
	h2 := NewDefaultHasher([]byte("personal-two"))

	if bytes.Equal(h1.Merge(a, b).Value(), h2.Merge(a, b).Value()) {
		t.Fatalf("different personalisations must not collide")
	}
}

func TestDefaultHasherMergeAndMergePeaksDefaultIdentical(t *testing.T) {
	h := NewDefaultHasher(nil)
	a := InlineNode([]byte("p"))
	b := InlineNode([]byte("q"))
	if !h.Merge(a, b).Equal(h.MergePeaks(a, b)) {
		t.Fatalf("Merge and MergePeaks should be identical by default")
	}
}
