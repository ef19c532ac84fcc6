package cmd

import (
	"path/filepath"
	"testing"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/grid"
)

func TestLoadSaveEngineRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")

	e := newTestEngine(t)
	e.Set(grid.Coord{Row: 0, Col: 0}, atom.FromLetter('C'))
	if err := saveEngine(e, path); err != nil {
		t.Fatalf("saveEngine: %v", err)
	}

	loaded, err := loadEngine(path)
	if err != nil {
		t.Fatalf("loadEngine: %v", err)
	}
	if loaded.Height() != 3 || loaded.Width() != 3 {
		t.Errorf("got %dx%d, want 3x3", loaded.Height(), loaded.Width())
	}
	c := loaded.Get(grid.Coord{Row: 0, Col: 0})
	if c.Contents.Letter() != 'C' {
		t.Errorf("got %c, want C", c.Contents.Letter())
	}
}

func TestLoadEngine_MissingFile(t *testing.T) {
	if _, err := loadEngine(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
