package engine

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/fill"
	"github.com/crossplay/xword/pkg/grid"
)

func firstAcrossSlot(e *Engine) *clue.Slot {
	slots := e.Slots()
	for i := range slots {
		if slots[i].Direction == clue.Across {
			return &slots[i]
		}
	}
	return nil
}

func TestEngine_SetUndoRedo(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	c := grid.Coord{Row: 0, Col: 0}

	e.Set(c, atom.FromLetter('A'))
	if !e.IsFilled(c) {
		t.Fatalf("expected cell filled after Set")
	}

	if !e.Undo() {
		t.Fatalf("Undo should succeed")
	}
	if e.IsFilled(c) {
		t.Fatalf("expected cell blank after Undo")
	}

	if !e.Redo() {
		t.Fatalf("Redo should succeed")
	}
	if !e.IsFilled(c) {
		t.Fatalf("expected cell filled after Redo")
	}

	if e.Redo() {
		t.Errorf("Redo at top of stack should return false")
	}
}

func TestEngine_SetSlotAndClearSlot(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	slot := firstAcrossSlot(e)
	if slot == nil {
		t.Fatalf("expected at least one across slot on a 3x3 open grid")
	}

	word := atom.FromString("CAT")
	e.SetSlot(slot, word)

	refreshed := firstAcrossSlot(e)
	if !refreshed.IsFilled() {
		t.Fatalf("expected slot filled after SetSlot")
	}
	if refreshed.ToWord().String() != "CAT" {
		t.Errorf("got word %q, want CAT", refreshed.ToWord().String())
	}

	e.ClearSlot(refreshed)
	refreshed = firstAcrossSlot(e)
	if refreshed.IsFilled() {
		t.Errorf("expected slot blank after ClearSlot")
	}

	if !e.Undo() {
		t.Fatalf("Undo after ClearSlot should succeed")
	}
	refreshed = firstAcrossSlot(e)
	if !refreshed.IsFilled() {
		t.Errorf("expected slot refilled after undoing ClearSlot")
	}
}

func TestEngine_ClearAllAtomsRespectsLocks(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	locked := grid.Coord{Row: 0, Col: 0}
	open := grid.Coord{Row: 0, Col: 1}

	e.Set(locked, atom.FromLetter('C'))
	e.Set(open, atom.FromLetter('A'))
	e.LockCell(locked, true)

	e.ClearAllAtoms()

	if !e.IsFilled(locked) {
		t.Errorf("locked cell should survive ClearAllAtoms")
	}
	if e.IsFilled(open) {
		t.Errorf("unlocked cell should be cleared by ClearAllAtoms")
	}
}

func TestEngine_BarrierAndLockToggles(t *testing.T) {
	e := New(5, 5, NewMetadata("t", "a", grid.Easy))
	c := grid.Coord{Row: 1, Col: 1}

	e.ToggleBarrier(c, false)
	if !e.Get(c).Barrier {
		t.Fatalf("expected barrier after ToggleBarrier")
	}
	e.ToggleBarrier(c, false)
	if e.Get(c).Barrier {
		t.Fatalf("expected no barrier after second ToggleBarrier")
	}

	e.ToggleLock(c)
	if !e.IsLocked(c) {
		t.Errorf("expected locked after ToggleLock")
	}
	e.ToggleLock(c)
	if e.IsLocked(c) {
		t.Errorf("expected unlocked after second ToggleLock")
	}
}

func TestEngine_HintRoundTrip(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	if _, ok := e.Hint(clue.Across, 1); ok {
		t.Fatalf("expected no hint before SetHint")
	}
	e.SetHint(clue.Across, 1, "feline sound")
	text, ok := e.Hint(clue.Across, 1)
	if !ok || text != "feline sound" {
		t.Errorf("got (%q, %v), want (\"feline sound\", true)", text, ok)
	}
}

func TestEngine_AutofillSolvesThreeByThree(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	// Rows COT/ARE/BED read down as CAB/ORE/TED: six distinct words, so
	// this six-entry dictionary makes the grid fully solvable without
	// repeating a word.
	for _, w := range []string{"COT", "ARE", "BED", "CAB", "ORE", "TED"} {
		e.AddEntry(atom.FromString(w), 80)
	}

	params := fill.DefaultParams()
	params.SecondsLimit = 2
	params.Rand = rand.New(rand.NewSource(7))

	if e.IsSearching() {
		t.Fatalf("IsSearching should be false before Autofill")
	}

	outcome := e.Autofill(params)
	if outcome != fill.Solved {
		t.Fatalf("got outcome %v, want solved", outcome)
	}
	if e.IsSearching() {
		t.Errorf("IsSearching should be false after Autofill returns")
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if !e.IsFilled(grid.Coord{Row: row, Col: col}) {
				t.Errorf("cell (%d,%d) should be filled after a solved autofill", row, col)
			}
		}
	}
}

func TestEngine_StopAutofillEndsRun(t *testing.T) {
	e := New(5, 5, NewMetadata("t", "a", grid.Easy))
	// No dictionary entries loaded: no slot has a candidate, so the run
	// ends either Cancelled (the stop flag is seen) or Exhausted (score
	// relaxation reaches zero first, or StopAutofill lands before Run
	// has cleared its flags).
	params := fill.DefaultParams()
	params.SecondsLimit = 30
	params.Rollback = true

	done := make(chan fill.Outcome, 1)
	go func() {
		done <- e.Autofill(params)
	}()

	e.StopAutofill()

	outcome := <-done
	if outcome != fill.Cancelled && outcome != fill.Exhausted {
		t.Errorf("got outcome %v, want cancelled or exhausted", outcome)
	}
}

func TestEngine_PersistRoundTrip(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	e.Set(grid.Coord{Row: 0, Col: 0}, atom.FromLetter('C'))
	e.SetBarrier(grid.Coord{Row: 2, Col: 2}, true, false)

	var buf bytes.Buffer
	if err := WriteGrid(&buf, e.g); err != nil {
		t.Fatalf("WriteGrid: %v", err)
	}

	loaded, err := ReadGrid(&buf)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}

	if loaded.Height() != 3 || loaded.Width() != 3 {
		t.Fatalf("got dimensions %dx%d, want 3x3", loaded.Height(), loaded.Width())
	}
	if !loaded.IsFilled(grid.Coord{Row: 0, Col: 0}) {
		t.Errorf("expected (0,0) filled after round trip")
	}
	if !loaded.IsBarrier(grid.Coord{Row: 2, Col: 2}) {
		t.Errorf("expected (2,2) a barrier after round trip")
	}
}

func TestEngine_JSONSidecar(t *testing.T) {
	e := New(3, 3, NewMetadata("across and down", "a", grid.Easy))
	slot := firstAcrossSlot(e)
	e.SetSlot(slot, atom.FromString("CAT"))

	var buf bytes.Buffer
	if err := WriteJSONSidecar(&buf, e.g, e.structure, e.meta); err != nil {
		t.Fatalf("WriteJSONSidecar: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("expected non-empty JSON output")
	}
}

func TestNewGeneratedEngine(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	e, err := NewGeneratedEngine(5, 5, grid.Easy, r, NewMetadata("gen", "a", grid.Easy))
	if err != nil {
		t.Fatalf("NewGeneratedEngine: %v", err)
	}
	if !e.IsValidPattern() {
		t.Errorf("generated grid should have a valid slot pattern")
	}
}

func TestEngine_ReseedWithNewRandomGrid(t *testing.T) {
	e := New(5, 5, NewMetadata("t", "a", grid.Easy))
	e.Set(grid.Coord{Row: 0, Col: 0}, atom.FromLetter('A'))

	err := e.NewRandomGrid(GeneratorConfig{
		Height:     5,
		Width:      5,
		Difficulty: grid.Easy,
		Rand:       rand.New(rand.NewSource(4)),
	})
	if err != nil {
		t.Fatalf("NewRandomGrid: %v", err)
	}
	if !e.IsValidPattern() {
		t.Errorf("reseeded grid should have a valid slot pattern")
	}
	if e.Undo() {
		t.Errorf("reseeding should discard the prior action log")
	}
}

func TestEngine_SaveAndSaveJSON(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	e.Set(grid.Coord{Row: 0, Col: 0}, atom.FromLetter('C'))

	var text bytes.Buffer
	if err := e.Save(&text); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := ReadGrid(&text)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if !loaded.IsFilled(grid.Coord{Row: 0, Col: 0}) {
		t.Errorf("expected (0,0) filled after Save/ReadGrid round trip")
	}

	var jsonOut bytes.Buffer
	if err := e.SaveJSON(&jsonOut); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	if jsonOut.Len() == 0 {
		t.Errorf("expected non-empty JSON output")
	}
}

func TestEngine_FingerprintBeforeLoad(t *testing.T) {
	e := New(3, 3, NewMetadata("t", "a", grid.Easy))
	if _, ok := e.Fingerprint(); ok {
		t.Errorf("expected no fingerprint before any dictionary load")
	}
}
