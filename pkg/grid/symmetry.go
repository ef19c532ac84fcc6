package grid

// SetBarrier flips the barrier bit at c and, if enforceSymmetry is true
// and the rotational pair differs from c, flips it there too. Barrier
// edits never touch the action log - this design is preserved from the
// original engine (see spec §9, "Non-undoable barrier and dimension
// edits").
func (g *Grid) SetBarrier(c Coord, val bool, enforceSymmetry bool) {
	g.mustBeInBounds(c)
	g.cells[c.Row][c.Col].Barrier = val

	if enforceSymmetry {
		pair := g.RotationalPair(c)
		if pair != c {
			g.cells[pair.Row][pair.Col].Barrier = val
		}
	}
}

// IsSymmetric reports whether every barrier cell has a barrier at its
// rotational pair, i.e. the grid has 180-degree rotational symmetry.
func (g *Grid) IsSymmetric() bool {
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			c := Coord{row, col}
			pair := g.RotationalPair(c)
			if g.cells[row][col].Barrier != g.cells[pair.Row][pair.Col].Barrier {
				return false
			}
		}
	}
	return true
}
