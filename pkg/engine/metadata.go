package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/crossplay/xword/pkg/grid"
)

// Metadata carries the descriptive fields attached to a puzzle, as
// opposed to its grid content.
type Metadata struct {
	ID         string
	Title      string
	Author     string
	Difficulty grid.Difficulty
	Theme      string
	CreatedAt  time.Time
}

// NewMetadata returns a Metadata with a fresh UUID and CreatedAt set to
// now.
func NewMetadata(title, author string, difficulty grid.Difficulty) Metadata {
	return Metadata{
		ID:         uuid.New().String(),
		Title:      title,
		Author:     author,
		Difficulty: difficulty,
		CreatedAt:  timeNow(),
	}
}

// timeNow is a seam for tests that need deterministic timestamps.
var timeNow = time.Now
