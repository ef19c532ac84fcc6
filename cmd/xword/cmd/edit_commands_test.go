package cmd

import (
	"testing"

	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/engine"
	"github.com/crossplay/xword/pkg/grid"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(3, 3, engine.NewMetadata("t", "a", grid.Easy))
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord("1", "2")
	if err != nil {
		t.Fatalf("parseCoord: %v", err)
	}
	if c.Row != 1 || c.Col != 2 {
		t.Errorf("got %+v, want {1 2}", c)
	}

	if _, err := parseCoord("x", "2"); err == nil {
		t.Error("expected error for non-numeric row")
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]clue.Direction{
		"across": clue.Across,
		"a":      clue.Across,
		"down":   clue.Down,
		"d":      clue.Down,
		"DOWN":   clue.Down,
	}
	for in, want := range cases {
		got, err := parseDirection(in)
		if err != nil {
			t.Fatalf("parseDirection(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("parseDirection(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseDirection("sideways"); err == nil {
		t.Error("expected error for invalid direction")
	}
}

func TestCmdSetAndClearRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	if err := cmdSet(e, []string{"set", "0", "0", "a"}); err != nil {
		t.Fatalf("cmdSet: %v", err)
	}
	if !e.IsFilled(grid.Coord{Row: 0, Col: 0}) {
		t.Error("expected cell (0,0) to be filled after set")
	}

	slot, err := findSlot(e, clue.Across, 1)
	if err != nil {
		t.Fatalf("findSlot: %v", err)
	}
	if err := cmdClear(e, []string{"clear", slot.Direction.String(), "1"}); err != nil {
		t.Fatalf("cmdClear: %v", err)
	}
	if e.IsFilled(grid.Coord{Row: 0, Col: 0}) {
		t.Error("expected cell (0,0) to be cleared")
	}
}

func TestCmdSetSlot(t *testing.T) {
	e := newTestEngine(t)
	if err := cmdSetSlot(e, []string{"setslot", "across", "1", "cat"}); err != nil {
		t.Fatalf("cmdSetSlot: %v", err)
	}
	for col, want := range []rune{'C', 'A', 'T'} {
		c := e.Get(grid.Coord{Row: 0, Col: col})
		if c.Contents.Letter() != want {
			t.Errorf("col %d: got %c, want %c", col, c.Contents.Letter(), want)
		}
	}
}

func TestCmdBarrierAndLockToggle(t *testing.T) {
	e := newTestEngine(t)
	coord := grid.Coord{Row: 1, Col: 1}

	if err := cmdBarrier(e, []string{"barrier", "1", "1"}); err != nil {
		t.Fatalf("cmdBarrier: %v", err)
	}
	if !e.Get(coord).Barrier {
		t.Error("expected cell to be a barrier after toggle")
	}

	if err := cmdLock(e, []string{"lock", "0", "0"}); err != nil {
		t.Fatalf("cmdLock: %v", err)
	}
	if !e.IsLocked(grid.Coord{Row: 0, Col: 0}) {
		t.Error("expected cell to be locked after toggle")
	}
}

func TestFindSlot_Missing(t *testing.T) {
	e := newTestEngine(t)
	if _, err := findSlot(e, clue.Across, 99); err == nil {
		t.Error("expected error for nonexistent slot")
	}
}
