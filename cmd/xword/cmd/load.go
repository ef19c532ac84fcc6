package cmd

import (
	"fmt"
	"os"

	"github.com/crossplay/xword/pkg/engine"
	"github.com/crossplay/xword/pkg/grid"
)

// loadEngine opens path, parses it as a persisted grid, and wraps it in
// a fresh engine whose metadata has path as its title, no author, and
// Medium difficulty. Subcommands that only need to
// read or fill a grid's contents use this instead of reconstructing
// one field at a time.
func loadEngine(path string) (*engine.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xword: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := engine.ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("xword: reading %s: %w", path, err)
	}

	meta := engine.NewMetadata(path, "", grid.Medium)
	return engine.NewFromGrid(g, meta), nil
}

// saveEngine writes e's grid back to path, overwriting it.
func saveEngine(e *engine.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xword: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := e.Save(f); err != nil {
		return fmt.Errorf("xword: writing %s: %w", path, err)
	}
	return nil
}
