package cmd

import (
	"fmt"
	"strings"

	"github.com/crossplay/xword/pkg/grid"
)

// parseDifficulty converts a --difficulty flag value to grid.Difficulty,
// mirroring the validation crossgen does for its own --difficulty flag.
func parseDifficulty(s string) (grid.Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return grid.Easy, nil
	case "medium":
		return grid.Medium, nil
	case "hard":
		return grid.Hard, nil
	case "expert":
		return grid.Expert, nil
	default:
		return grid.Medium, fmt.Errorf("invalid difficulty %q (must be easy, medium, hard, or expert)", s)
	}
}
