// Package actionlog implements the invertible action log (C3): atomic
// and grouped grid edits with a linear history and a redo tail. It
// knows nothing about slots or clues; pkg/clue builds Groups on top of
// it for fill operations.
package actionlog

import (
	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/grid"
)

// Action is a reversible edit to a grid. Apply and Invert must be exact
// inverses of each other for any reachable grid state. Coords reports
// every cell the action touches, so a Log can notify an external
// observer (the clue structure's constraint mirror) without knowing
// what kind of action ran.
type Action interface {
	Apply(g *grid.Grid)
	Invert(g *grid.Grid)
	Coords() []grid.Coord
}

// SetCell assigns one open cell's contents. It captures the cell's
// contents at construction time as Old, so Invert restores whatever was
// there before Apply ran.
type SetCell struct {
	Coord grid.Coord
	New   atom.Atom
	Old   atom.Atom
}

// NewSetCell builds a SetCell action, reading g's current contents at
// coord as the action's Old value.
func NewSetCell(g *grid.Grid, coord grid.Coord, newAtom atom.Atom) *SetCell {
	return &SetCell{
		Coord: coord,
		New:   newAtom,
		Old:   g.Get(coord).Contents,
	}
}

// Apply writes New into the cell.
func (a *SetCell) Apply(g *grid.Grid) {
	g.SetCellRaw(a.Coord, a.New)
}

// Invert restores Old.
func (a *SetCell) Invert(g *grid.Grid) {
	g.SetCellRaw(a.Coord, a.Old)
}

// Coords returns the single cell this action touches.
func (a *SetCell) Coords() []grid.Coord {
	return []grid.Coord{a.Coord}
}

// Group is an ordered list of actions applied as one unit. Apply runs
// them forward; Invert runs them in reverse, so a Group is itself a
// valid Action.
type Group struct {
	Actions []Action
}

// NewGroup wraps actions in a Group. An empty Group is valid and a
// no-op under both Apply and Invert.
func NewGroup(actions ...Action) *Group {
	return &Group{Actions: actions}
}

func (g *Group) Apply(grd *grid.Grid) {
	for _, a := range g.Actions {
		a.Apply(grd)
	}
}

func (g *Group) Invert(grd *grid.Grid) {
	for i := len(g.Actions) - 1; i >= 0; i-- {
		g.Actions[i].Invert(grd)
	}
}

// Coords returns the concatenation of every child action's coords, in
// child order.
func (g *Group) Coords() []grid.Coord {
	var out []grid.Coord
	for _, a := range g.Actions {
		out = append(out, a.Coords()...)
	}
	return out
}
