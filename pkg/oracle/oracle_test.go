package oracle

import (
	"testing"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
	"github.com/crossplay/xword/pkg/wordindex"
)

func fillRow(g *grid.Grid, row int, s *clue.Structure, text string) {
	for col, r := range text {
		c := grid.Coord{Row: row, Col: col}
		g.SetCellRaw(c, atom.FromLetter(r))
		s.UpdateConstraint(c)
	}
}

func TestOracle_Classification(t *testing.T) {
	// S4: 3x3 grid, no barriers. Fill row 0 with XYZ (not in dictionary).
	g := grid.NewGrid(3, 3)
	s := clue.New(g)
	idx := wordindex.NewIndex()
	idx.AddEntry(atom.FromString("CAT"), 80)

	fillRow(g, 0, s, "XYZ")
	status := Classify(s.Slots(), idx, 1)
	if status != Invalid {
		t.Fatalf("Classify() = %v, want Invalid", status)
	}

	// Replace with CAT; CAT is the only dictionary word, so no 3-letter
	// down word starts with A or T and those down slots are overdetermined.
	fillRow(g, 0, s, "CAT")
	status = Classify(s.Slots(), idx, 1)
	if status != Overdetermined {
		t.Fatalf("Classify() = %v, want Overdetermined", status)
	}
}

func TestOracle_Weak(t *testing.T) {
	g := grid.NewGrid(3, 3)
	s := clue.New(g)
	idx := wordindex.NewIndex()
	idx.AddEntry(atom.FromString("CAT"), 10)
	idx.AddEntry(atom.FromString("COT"), 90)
	idx.AddEntry(atom.FromString("CAR"), 90)
	idx.AddEntry(atom.FromString("ACE"), 90)
	idx.AddEntry(atom.FromString("TRE"), 90)

	fillRow(g, 0, s, "CAT")
	status := Classify(s.Slots(), idx, idx.FreqScore(atom.FromString("COT")))
	if status != Weak {
		t.Fatalf("Classify() = %v, want Weak (CAT should score below COT/CAR)", status)
	}
}

func TestOracle_LockedSlotSkipsValidation(t *testing.T) {
	g := grid.NewGrid(3, 3)
	s := clue.New(g)
	idx := wordindex.NewIndex()

	fillRow(g, 0, s, "XYZ")
	for col := 0; col < 3; col++ {
		g.SetLocked(grid.Coord{Row: 0, Col: col}, true)
	}
	for _, slot := range s.Slots() {
		if slot.Direction == clue.Across {
			s.UpdateConstraint(slot.Cells[0])
		}
	}

	status := Classify(s.Slots(), idx, 1)
	if status == Invalid {
		t.Errorf("locked slot with dictionary-absent word should not classify Invalid")
	}
}

func TestOracle_IsSolved(t *testing.T) {
	g := grid.NewGrid(3, 3)
	s := clue.New(g)
	idx := wordindex.NewIndex()
	idx.AddEntry(atom.FromString("CAT"), 80)
	idx.AddEntry(atom.FromString("ACE"), 80)
	idx.AddEntry(atom.FromString("TRE"), 80)

	if IsSolved(s.Slots(), idx) {
		t.Errorf("empty grid should not report solved")
	}

	fillRow(g, 0, s, "CAT")
	if IsSolved(s.Slots(), idx) {
		t.Errorf("grid with unfilled down slots should not report solved")
	}
}
