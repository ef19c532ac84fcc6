package grid

import "math/rand"

// SeedConfig configures random barrier placement for grid generation.
type SeedConfig struct {
	Rand         *rand.Rand
	BlackDensity float64 // fraction of cells that should end up as barriers
}

// SeedBarriers randomly places barrier cells so that, once mirrored for
// 180-degree rotational symmetry, roughly BlackDensity of the grid is
// barriers. Only one representative of each rotationally-symmetric pair
// is chosen directly; SetBarrier mirrors the rest. The grid's own center
// cell (self-paired under rotation) is never chosen, to leave a
// connectivity-friendly seed for odd-sized grids.
func (g *Grid) SeedBarriers(cfg SeedConfig) {
	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	totalCells := g.h * g.w
	targetBarriers := int(float64(totalCells) * cfg.BlackDensity)

	var representatives []Coord
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			c := Coord{row, col}
			pair := g.RotationalPair(c)
			if pair == c {
				continue // self-paired center cell: never a barrier seed
			}
			linear := func(p Coord) int { return p.Row*g.w + p.Col }
			if linear(c) < linear(pair) {
				representatives = append(representatives, c)
			}
		}
	}

	r.Shuffle(len(representatives), func(i, j int) {
		representatives[i], representatives[j] = representatives[j], representatives[i]
	})

	placed := 0
	budget := targetBarriers / 2
	for _, c := range representatives {
		if placed >= budget {
			break
		}
		g.SetBarrier(c, true, true)
		placed++
	}
}
