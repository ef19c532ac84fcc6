// Package clue implements the derived clue structure (C4): slot
// enumeration, numbering, and the cell-to-slot back-references that let
// cell edits update a slot's mirrored constraint word in O(1). It is
// built on top of pkg/grid and never mutates the grid itself.
package clue

import (
	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/grid"
)

// Direction is the orientation of a slot.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// NoNumber is the sentinel returned by Structure.Number for cells that
// start no slot.
const NoNumber = 0

// Slot is a maximal run of three or more consecutive open cells in one
// direction, delimited by grid edges or barrier cells.
type Slot struct {
	Direction  Direction
	Start      grid.Coord
	Length     int
	Cells      []grid.Coord
	Constraint atom.Word // mirrors current cell contents, empty atoms = blank
	Number     int
	Locked     bool // true iff every cell is locked AND filled
}

// ToWord returns a copy of the slot's current constraint word.
func (s *Slot) ToWord() atom.Word {
	return s.Constraint.Clone()
}

// IsFilled reports whether every cell in the slot currently holds a
// non-empty atom.
func (s *Slot) IsFilled() bool {
	return s.Constraint.IsComplete()
}
