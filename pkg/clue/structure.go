package clue

import (
	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/grid"
)

// minSlotLength is the shortest run of open cells that forms a slot.
const minSlotLength = 3

// Structure is the derived clue structure of a grid: its slots, their
// numbering, and the per-cell back-references needed to keep slot
// constraints in sync with cell edits in O(1). It refreshes lazily: any
// read that needs up-to-date slots rebuilds first if dirty.
type Structure struct {
	g     *grid.Grid
	dirty bool

	slots       []Slot
	number      map[grid.Coord]int
	startsAt    map[grid.Coord][]int // slot indices starting at a coord (0-2 entries)
	coordToSlot map[grid.Coord][]int // slot indices containing a coord
	hasTwoRun   bool                 // true if any run of exactly length 2 was seen
}

// New creates a clue structure over g, already refreshed.
func New(g *grid.Grid) *Structure {
	s := &Structure{g: g}
	s.MarkDirty()
	s.ensureFresh()
	return s
}

// MarkDirty invalidates the structure; the next read rebuilds it. Every
// mutator that changes barriers or dimensions must call this.
func (s *Structure) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether the structure needs a rebuild.
func (s *Structure) Dirty() bool {
	return s.dirty
}

func (s *Structure) ensureFresh() {
	if !s.dirty {
		return
	}
	s.refresh()
	s.dirty = false
}

// Slots returns all enumerated slots, refreshing first if dirty. The
// slice is across slots followed by down slots, each group in
// row-major/column-major scan order respectively.
func (s *Structure) Slots() []Slot {
	s.ensureFresh()
	return s.slots
}

// Number returns the clue number assigned to c, or NoNumber if c starts
// no slot.
func (s *Structure) Number(c grid.Coord) int {
	s.ensureFresh()
	if n, ok := s.number[c]; ok {
		return n
	}
	return NoNumber
}

// StartsAt returns the indices (into Slots()) of slots beginning at c:
// zero, one, or two entries.
func (s *Structure) StartsAt(c grid.Coord) []int {
	s.ensureFresh()
	return s.startsAt[c]
}

// SlotsAt returns the indices of all slots containing c (at most one
// across, one down).
func (s *Structure) SlotsAt(c grid.Coord) []int {
	s.ensureFresh()
	return s.coordToSlot[c]
}

// IsValidPattern reports whether the barrier layout contains no run of
// open cells of length exactly 2. Runs of length 1 are ignored.
func (s *Structure) IsValidPattern() bool {
	s.ensureFresh()
	return !s.hasTwoRun
}

// UpdateConstraint mirrors a cell-content edit into every slot
// containing c, in O(number of slots at c) (at most two). Cell-content
// edits never dirty the structure; this is how they stay in sync
// without a full rebuild. If the structure happens to be dirty (a
// barrier change is pending), it rebuilds first so the slot list it
// writes into is current.
func (s *Structure) UpdateConstraint(c grid.Coord) {
	s.ensureFresh()
	for _, idx := range s.coordToSlot[c] {
		slot := &s.slots[idx]
		for i, cc := range slot.Cells {
			if cc == c {
				slot.Constraint[i] = s.g.Get(c).Contents
				break
			}
		}
		slot.Locked = s.isSlotLocked(slot.Cells)
	}
}

func (s *Structure) refresh() {
	h, w := s.g.Height(), s.g.Width()

	s.slots = nil
	s.number = make(map[grid.Coord]int)
	s.startsAt = make(map[grid.Coord][]int)
	s.coordToSlot = make(map[grid.Coord][]int)
	s.hasTwoRun = false

	// First pass: number cells that start an across or down slot, in
	// row-major scan order, mirroring pkg/grid/entries.go's two-phase
	// scan from the teacher.
	clueNumber := 1
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := grid.Coord{Row: row, Col: col}
			if s.g.IsBarrier(c) {
				continue
			}

			// A slot needs at least minSlotLength (3) open cells.
			startsAcross := (col == 0 || s.g.IsBarrier(grid.Coord{Row: row, Col: col - 1})) &&
				col+2 < w && !s.g.IsBarrier(grid.Coord{Row: row, Col: col + 1}) &&
				!s.g.IsBarrier(grid.Coord{Row: row, Col: col + 2})
			startsDown := (row == 0 || s.g.IsBarrier(grid.Coord{Row: row - 1, Col: col})) &&
				row+2 < h && !s.g.IsBarrier(grid.Coord{Row: row + 1, Col: col}) &&
				!s.g.IsBarrier(grid.Coord{Row: row + 2, Col: col})

			if startsAcross || startsDown {
				s.number[c] = clueNumber
				clueNumber++
			}
		}
	}

	s.scanDirection(Across, h, w)
	s.scanDirection(Down, h, w)
}

func (s *Structure) scanDirection(dir Direction, h, w int) {
	outer, inner := h, w
	if dir == Down {
		outer, inner = w, h
	}

	for o := 0; o < outer; o++ {
		i := 0
		for i < inner {
			c := dirCoord(dir, o, i)
			if s.g.IsBarrier(c) {
				i++
				continue
			}

			start := i
			var cells []grid.Coord
			for i < inner && !s.g.IsBarrier(dirCoord(dir, o, i)) {
				cells = append(cells, dirCoord(dir, o, i))
				i++
			}

			if len(cells) == 2 {
				s.hasTwoRun = true
			}

			if len(cells) >= minSlotLength {
				startCoord := dirCoord(dir, o, start)
				slot := Slot{
					Direction:  dir,
					Start:      startCoord,
					Length:     len(cells),
					Cells:      cells,
					Number:     s.number[startCoord],
					Constraint: s.snapshotConstraint(cells),
				}
				slot.Locked = s.isSlotLocked(cells)

				idx := len(s.slots)
				s.slots = append(s.slots, slot)
				s.startsAt[startCoord] = append(s.startsAt[startCoord], idx)
				for _, cc := range cells {
					s.coordToSlot[cc] = append(s.coordToSlot[cc], idx)
				}
			}
		}
	}
}

func (s *Structure) snapshotConstraint(cells []grid.Coord) atom.Word {
	w := make(atom.Word, len(cells))
	for i, c := range cells {
		w[i] = s.g.Get(c).Contents
	}
	return w
}

func (s *Structure) isSlotLocked(cells []grid.Coord) bool {
	for _, c := range cells {
		if !s.g.IsLocked(c) || !s.g.IsFilled(c) {
			return false
		}
	}
	return true
}

func dirCoord(dir Direction, outer, inner int) grid.Coord {
	if dir == Across {
		return grid.Coord{Row: outer, Col: inner}
	}
	return grid.Coord{Row: inner, Col: outer}
}
