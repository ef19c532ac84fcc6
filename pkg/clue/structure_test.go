package clue

import (
	"testing"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/grid"
)

func TestStructure_EmptyGrid(t *testing.T) {
	g := grid.NewGrid(5, 5)
	s := New(g)

	slots := s.Slots()
	// Five across rows + five down columns, each length 5.
	if len(slots) != 10 {
		t.Fatalf("got %d slots, want 10", len(slots))
	}
	if !s.IsValidPattern() {
		t.Errorf("empty grid should have a valid pattern")
	}
}

func TestStructure_Numbering(t *testing.T) {
	// 5x5 grid with a single barrier at (0,1). Row 0 splits into a
	// length-1 across run (ignored) and a length-3 across run starting
	// at (0,2). Column 0 is unaffected; column 1 splits at row 0.
	g := grid.NewGrid(5, 5)
	g.SetBarrier(grid.Coord{Row: 0, Col: 1}, true, false)

	s := New(g)

	// (0,0) starts a down slot (length 5) only, since the across run
	// there has length 1.
	if n := s.Number(grid.Coord{Row: 0, Col: 0}); n != 1 {
		t.Errorf("Number(0,0) = %d, want 1", n)
	}
	// (0,2) starts the across run of length 3 (cols 2-4).
	if n := s.Number(grid.Coord{Row: 0, Col: 2}); n == NoNumber {
		t.Errorf("Number(0,2) should be non-zero, slot starts there")
	}
	// (1,1) starts the down run for column 1 (rows 1-4, length 4).
	if n := s.Number(grid.Coord{Row: 1, Col: 1}); n == NoNumber {
		t.Errorf("Number(1,1) should be non-zero, down slot starts there")
	}
}

func TestStructure_LengthTwoRunInvalidatesPattern(t *testing.T) {
	g := grid.NewGrid(5, 5)
	// Isolate a 2-cell across run at row 0, cols 0-1.
	g.SetBarrier(grid.Coord{Row: 0, Col: 2}, true, false)

	s := New(g)
	if s.IsValidPattern() {
		t.Errorf("length-2 run should invalidate the pattern")
	}
}

func TestStructure_LengthOneRunIgnored(t *testing.T) {
	g := grid.NewGrid(5, 5)
	g.SetBarrier(grid.Coord{Row: 0, Col: 1}, true, false)
	g.SetBarrier(grid.Coord{Row: 1, Col: 0}, true, false)

	s := New(g)
	if !s.IsValidPattern() {
		t.Errorf("length-1 runs should not invalidate the pattern")
	}

	for _, slot := range s.Slots() {
		if slot.Start == (grid.Coord{Row: 0, Col: 0}) && slot.Direction == Across {
			t.Errorf("length-1 across run at (0,0) should not be enumerated as a slot")
		}
	}
}

func TestStructure_AllBarrierGridHasNoSlots(t *testing.T) {
	g := grid.NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.SetBarrier(grid.Coord{Row: r, Col: c}, true, false)
		}
	}

	s := New(g)
	if len(s.Slots()) != 0 {
		t.Errorf("all-barrier grid should have zero slots, got %d", len(s.Slots()))
	}
	if !s.IsValidPattern() {
		t.Errorf("all-barrier grid has no length-2 runs, pattern should be valid")
	}
}

func TestStructure_DirtyRebuildsOnRead(t *testing.T) {
	g := grid.NewGrid(5, 5)
	s := New(g)
	before := len(s.Slots())

	g.SetBarrier(grid.Coord{Row: 0, Col: 2}, true, true)
	s.MarkDirty()

	after := len(s.Slots())
	if after == before {
		t.Errorf("slot count should change after barrier change and MarkDirty, stayed at %d", before)
	}
}

func TestStructure_UpdateConstraintMirrorsCellEdit(t *testing.T) {
	g := grid.NewGrid(5, 5)
	s := New(g)

	c := grid.Coord{Row: 0, Col: 0}
	g.SetCellRaw(c, atom.FromLetter('A'))
	s.UpdateConstraint(c)

	for _, idx := range s.SlotsAt(c) {
		slot := s.Slots()[idx]
		if slot.Constraint[0] != atom.FromLetter('A') {
			t.Errorf("slot %d constraint not mirrored after UpdateConstraint", idx)
		}
	}
}

func TestStructure_SlotIsFilled(t *testing.T) {
	g := grid.NewGrid(3, 5)
	s := New(g)

	row := []rune("HELLO")
	for col, r := range row {
		c := grid.Coord{Row: 0, Col: col}
		g.SetCellRaw(c, atom.FromLetter(r))
		s.UpdateConstraint(c)
	}

	found := false
	for _, slot := range s.Slots() {
		if slot.Direction == Across && slot.Start == (grid.Coord{Row: 0, Col: 0}) {
			found = true
			if !slot.IsFilled() {
				t.Errorf("slot should report filled after all cells set")
			}
			if slot.ToWord().String() != "HELLO" {
				t.Errorf("ToWord() = %q, want HELLO", slot.ToWord().String())
			}
		}
	}
	if !found {
		t.Fatalf("expected across slot starting at (0,0)")
	}
}
