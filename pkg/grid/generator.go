package grid

// Difficulty is a named barrier-density preset for grid generation.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// DensityForDifficulty maps a difficulty preset to a barrier-density
// fraction. These are conservative values: random placement creates
// length-2 runs more easily than constraint-aware placement, so density
// stays well under the 16-20% typical of hand-built symmetric grids.
func DensityForDifficulty(d Difficulty) float64 {
	switch d {
	case Easy:
		return 0.06
	case Medium:
		return 0.08
	case Hard:
		return 0.10
	case Expert:
		return 0.12
	default:
		return 0.08
	}
}
