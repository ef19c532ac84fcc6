// Package grid implements the crossword grid model (C2): a dense,
// fixed-capacity 2-D cell array with barrier/content/lock flags, bounds
// checking, and rotational-symmetry helpers. It has no knowledge of
// slots, clues, or the action log - those live in pkg/clue and
// pkg/actionlog and are built on top of the operations exported here.
package grid

import "github.com/crossplay/xword/pkg/atom"

// MaxDim is the largest allowed grid dimension in either axis.
const MaxDim = 35

// MinDim is the smallest allowed grid dimension in either axis.
const MinDim = 3

// Coord is a zero-indexed (row, column) position.
type Coord struct {
	Row, Col int
}

// Cell is a single grid position. A barrier cell's Contents and Locked
// fields are meaningless and must not be read; Grid enforces this at
// its API boundary.
type Cell struct {
	Barrier  bool
	Contents atom.Atom
	Locked   bool
}

// Grid is an H x W rectangle of cells backed by a MaxDim x MaxDim dense
// array; only the H x W prefix is reachable through the bounds-checked
// API. H and W each satisfy MinDim <= n <= MaxDim.
type Grid struct {
	h, w  int
	cells [MaxDim][MaxDim]Cell
}

// NewGrid constructs an empty (all-open, all-blank) grid of the given
// dimensions. Panics if the dimensions are out of range - grid sizing
// is a precondition, not a runtime error, per the engine's error-handling
// design (programmer bugs abort rather than propagate).
func NewGrid(h, w int) *Grid {
	g := &Grid{}
	g.SetDimensions(h, w)
	return g
}

// Height returns the current number of live rows.
func (g *Grid) Height() int { return g.h }

// Width returns the current number of live columns.
func (g *Grid) Width() int { return g.w }

func validDim(n int) bool {
	return n >= MinDim && n <= MaxDim
}

// SetDimensions validates and sets H and W. Cells outside the new live
// rectangle retain whatever values they held but become unreachable
// through the bounds-checked API until the grid grows again. Calling
// this a second time with the same (H, W) is a no-op observable to any
// query, per spec invariant.
func (g *Grid) SetDimensions(h, w int) {
	if !validDim(h) || !validDim(w) {
		panic("grid: dimensions out of range")
	}
	g.h = h
	g.w = w
}

// IsInBounds reports whether c lies within the live H x W rectangle.
func (g *Grid) IsInBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.h && c.Col >= 0 && c.Col < g.w
}

func (g *Grid) mustBeInBounds(c Coord) {
	if !g.IsInBounds(c) {
		panic("grid: coordinate out of bounds")
	}
}

// Get returns a copy of the cell at c. Panics if c is out of bounds.
func (g *Grid) Get(c Coord) Cell {
	g.mustBeInBounds(c)
	return g.cells[c.Row][c.Col]
}

// IsFilled reports whether the open cell at c holds a non-empty atom.
// Panics if c is out of bounds or is a barrier.
func (g *Grid) IsFilled(c Coord) bool {
	cell := g.Get(c)
	if cell.Barrier {
		panic("grid: reading contents of a barrier cell")
	}
	return !cell.Contents.IsEmpty()
}

// IsLocked reports whether the open cell at c is locked. Panics if c is
// out of bounds or is a barrier.
func (g *Grid) IsLocked(c Coord) bool {
	cell := g.Get(c)
	if cell.Barrier {
		panic("grid: reading lock state of a barrier cell")
	}
	return cell.Locked
}

// SetCellRaw assigns the contents of an open cell without touching the
// action log. Callers that need undo/redo should go through
// pkg/actionlog instead; this is the primitive that actions (and the
// clue structure's constraint mirroring) are built on.
func (g *Grid) SetCellRaw(c Coord, a atom.Atom) {
	g.mustBeInBounds(c)
	cell := &g.cells[c.Row][c.Col]
	if cell.Barrier {
		panic("grid: setting contents of a barrier cell")
	}
	cell.Contents = a
}

// SetLocked sets the lock flag of an open cell.
func (g *Grid) SetLocked(c Coord, locked bool) {
	g.mustBeInBounds(c)
	cell := &g.cells[c.Row][c.Col]
	if cell.Barrier {
		panic("grid: locking a barrier cell")
	}
	cell.Locked = locked
}

// RotationalPair returns the 180-degree rotational counterpart of c
// within the current H x W rectangle.
func (g *Grid) RotationalPair(c Coord) Coord {
	return Coord{Row: g.h - 1 - c.Row, Col: g.w - 1 - c.Col}
}

// IsBarrier reports whether c is a barrier cell. Panics if out of
// bounds.
func (g *Grid) IsBarrier(c Coord) bool {
	return g.Get(c).Barrier
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{h: g.h, w: g.w, cells: g.cells}
	return out
}
