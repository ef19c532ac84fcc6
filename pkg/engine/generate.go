package engine

import (
	"errors"
	"math/rand"

	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
)

// ErrGenerationFailed is returned when no valid barrier pattern was
// found after MaxGenerationAttempts tries.
var ErrGenerationFailed = errors.New("engine: failed to generate a valid grid after maximum attempts")

// MaxGenerationAttempts bounds the retry loop in NewRandomGrid.
const MaxGenerationAttempts = 1000

// GeneratorConfig parameterizes a random grid generation attempt.
type GeneratorConfig struct {
	Height     int
	Width      int
	Difficulty grid.Difficulty
	Rand       *rand.Rand
}

// NewRandomGrid builds an H x W grid with randomly seeded,
// rotationally-symmetric barriers at the density implied by
// difficulty, retrying with a fresh placement until the result is both
// fully connected and free of length-2 runs. This lives in pkg/engine
// rather than pkg/grid because validating a candidate pattern requires
// pkg/clue's slot enumeration, and pkg/clue already imports pkg/grid.
func NewRandomGrid(h, w int, difficulty grid.Difficulty, r *rand.Rand) (*grid.Grid, error) {
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	density := grid.DensityForDifficulty(difficulty)

	for attempt := 0; attempt < MaxGenerationAttempts; attempt++ {
		g := grid.NewGrid(h, w)
		g.SeedBarriers(grid.SeedConfig{Rand: r, BlackDensity: density})

		if !grid.IsConnected(g) {
			continue
		}

		structure := clue.New(g)
		if !structure.IsValidPattern() {
			continue
		}

		return g, nil
	}

	return nil, ErrGenerationFailed
}
