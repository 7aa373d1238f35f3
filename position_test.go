package mmr

import "testing"

func TestHeightInTreeAtPeaks(t *testing.T) {
	for h := uint64(0); h <= 60; h++ {
		pos := peakPos(h)
		if got := HeightInTree(pos); got != h {
			t.Errorf("HeightInTree(peakPos(%d)=%d) = %d, want %d", h, pos, got, h)
		}
	}
}

func TestHeightInTreeKnownPositions(t *testing.T) {
	// The canonical 0-based layout for a 7-node (height-2) perfect tree:
	//
	//       6
	//     /   \
	//    2     5
	//   / \   / \
	//  0   1 3   4
	tests := []struct {
		pos  uint64
		want uint64
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 0}, {4, 0}, {5, 1}, {6, 2},
	}
	for _, tt := range tests {
		if got := HeightInTree(tt.pos); got != tt.want {
			t.Errorf("HeightInTree(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestParentAndSiblingOffset(t *testing.T) {
	for h := uint64(0); h < 10; h++ {
		if got, want := ParentOffset(h), uint64(2)<<h; got != want {
			t.Errorf("ParentOffset(%d) = %d, want %d", h, got, want)
		}
		if got, want := SiblingOffset(h), (uint64(2)<<h)-1; got != want {
			t.Errorf("SiblingOffset(%d) = %d, want %d", h, got, want)
		}
	}
}

func TestLeftPeak(t *testing.T) {
	tests := []struct {
		mmrSize    uint64
		wantPos    uint64
		wantHeight uint64
	}{
		{1, 0, 0},
		{3, 2, 1},
		{4, 2, 1},
		{7, 6, 2},
	}
	for _, tt := range tests {
		pos, height := LeftPeak(tt.mmrSize)
		if pos != tt.wantPos || height != tt.wantHeight {
			t.Errorf("LeftPeak(%d) = (%d, %d), want (%d, %d)", tt.mmrSize, pos, height, tt.wantPos, tt.wantHeight)
		}
	}
}

func TestRightPeak(t *testing.T) {
	// mmrSize=4: peaks are (2,1) then (3,0), no further peak.
	pos, height, ok := RightPeak(2, 1, 4)
	if !ok || pos != 3 || height != 0 {
		t.Fatalf("RightPeak(2,1,4) = (%d,%d,%v), want (3,0,true)", pos, height, ok)
	}
	_, _, ok = RightPeak(pos, height, 4)
	if ok {
		t.Fatalf("RightPeak after the last peak should report no further peak")
	}

	// mmrSize=7: the single peak at (6,2) has no right sibling.
	_, _, ok = RightPeak(6, 2, 7)
	if ok {
		t.Fatalf("RightPeak(6,2,7) should report no further peak")
	}
}
