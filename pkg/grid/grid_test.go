package grid

import (
	"testing"

	"github.com/crossplay/xword/pkg/atom"
)

func TestNewGrid_DimensionBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		h, w      int
		wantPanic bool
	}{
		{"min valid", MinDim, MinDim, false},
		{"max valid", MaxDim, MaxDim, false},
		{"too small", MinDim - 1, MinDim, true},
		{"too large", MaxDim + 1, MaxDim, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Errorf("NewGrid(%d, %d) did not panic, want panic", tt.h, tt.w)
				}
				if !tt.wantPanic && r != nil {
					t.Errorf("NewGrid(%d, %d) panicked: %v", tt.h, tt.w, r)
				}
			}()
			NewGrid(tt.h, tt.w)
		})
	}
}

func TestSetDimensions_SecondCallIsNoOp(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetCellRaw(Coord{0, 0}, atom.FromLetter('C'))
	g.SetDimensions(5, 5)

	if !g.IsFilled(Coord{0, 0}) {
		t.Errorf("second SetDimensions with same args lost cell contents")
	}
	if g.Height() != 5 || g.Width() != 5 {
		t.Errorf("dimensions changed unexpectedly")
	}
}

func TestSetCellRaw_OnBarrierPanics(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetBarrier(Coord{1, 1}, true, false)

	defer func() {
		if recover() == nil {
			t.Errorf("SetCellRaw on a barrier cell did not panic")
		}
	}()
	g.SetCellRaw(Coord{1, 1}, atom.FromLetter('A'))
}

func TestGet_OutOfBoundsPanics(t *testing.T) {
	g := NewGrid(5, 5)
	defer func() {
		if recover() == nil {
			t.Errorf("Get out of bounds did not panic")
		}
	}()
	g.Get(Coord{5, 0})
}

func TestRotationalPair(t *testing.T) {
	g := NewGrid(5, 5)
	got := g.RotationalPair(Coord{0, 0})
	want := Coord{4, 4}
	if got != want {
		t.Errorf("RotationalPair(0,0) = %v, want %v", got, want)
	}

	center := g.RotationalPair(Coord{2, 2})
	if center != (Coord{2, 2}) {
		t.Errorf("center cell should map to itself, got %v", center)
	}
}

func TestSetBarrier_Symmetry(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetBarrier(Coord{0, 0}, true, true)

	if !g.IsBarrier(Coord{4, 4}) {
		t.Errorf("symmetric SetBarrier did not mirror to rotational pair")
	}
	if !g.IsSymmetric() {
		t.Errorf("grid should be symmetric after mirrored SetBarrier")
	}
}

func TestSetBarrier_NoSymmetry(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetBarrier(Coord{0, 0}, true, false)

	if g.IsBarrier(Coord{4, 4}) {
		t.Errorf("non-symmetric SetBarrier should not mirror")
	}
}

func TestIsConnected(t *testing.T) {
	g := NewGrid(5, 5)
	if !IsConnected(g) {
		t.Errorf("empty grid should be fully connected")
	}

	// Wall off the open top-right corner cell (0,4) by putting barriers
	// on both of its neighbours.
	g.SetBarrier(Coord{1, 4}, true, false)
	g.SetBarrier(Coord{0, 3}, true, false)
	if IsConnected(g) {
		t.Errorf("isolated corner cell should report disconnected")
	}
}

func TestAllBarrierGrid(t *testing.T) {
	g := NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.SetBarrier(Coord{r, c}, true, false)
		}
	}
	if IsConnected(g) {
		t.Errorf("all-barrier grid has no center cell to anchor connectivity, want false")
	}
}
