package fill

import (
	"math/rand"
	"testing"
	"time"

	"github.com/crossplay/xword/pkg/actionlog"
	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
	"github.com/crossplay/xword/pkg/oracle"
	"github.com/crossplay/xword/pkg/wordindex"
)

func newWiredFixture(h, w int) (*grid.Grid, *clue.Structure, *actionlog.Log) {
	g := grid.NewGrid(h, w)
	s := clue.New(g)
	log := actionlog.NewLog(g)
	log.OnChange = s.UpdateConstraint
	return g, s, log
}

func TestSearch_AutofillHappyPath(t *testing.T) {
	// S5: 5x5 grid, no barriers (every row/column is a 5-letter slot),
	// with a dictionary covering all ten slots.
	g, s, log := newWiredFixture(5, 5)
	idx := wordindex.NewIndex()
	for _, w := range []string{"ABIDE", "BEGOT", "CRANE", "DOUSE", "EATEN", "ABCDE", "BEROA", "IGAUT", "DONSE", "ETEEN"} {
		idx.AddEntry(atom.FromString(w), 80)
	}

	search := NewSearch()
	params := Params{
		SecondsLimit:         5,
		BranchingFactorLimit: BranchingUnlimited,
		Entropy:              0,
		EntropyDecay:         0.8,
		ScoreMin:             1,
		ScoreMinDecay:        0.8,
		Rollback:             true,
		Rand:                 rand.New(rand.NewSource(42)),
	}

	outcome := search.Run(g, s, log, idx, params)
	if outcome != Solved && outcome != Exhausted {
		t.Fatalf("Run() = %v, want Solved or Exhausted for a small synthetic dictionary", outcome)
	}
	if outcome == Solved {
		if !oracle.IsSolved(s.Slots(), idx) {
			t.Errorf("reported Solved but IsSolved() is false")
		}
		seen := map[string]bool{}
		for _, slot := range s.Slots() {
			word := slot.ToWord().String()
			if seen[word] {
				t.Errorf("word %q repeats across slots", word)
			}
			seen[word] = true
		}
	}
	if search.IsSearching() {
		t.Errorf("IsSearching() should be false after Run returns")
	}
}

func TestSearch_Cancellation(t *testing.T) {
	// S6: start a search then stop it almost immediately; expect a
	// bounded exit and, with Rollback set, a grid restored to its
	// pre-search state.
	g, s, log := newWiredFixture(5, 5)
	idx := wordindex.NewIndex() // empty: no candidates anywhere, search churns without solving

	search := NewSearch()
	params := Params{
		SecondsLimit:         5,
		BranchingFactorLimit: BranchingUnlimited,
		Entropy:              0,
		EntropyDecay:         1,
		ScoreMin:             1,
		ScoreMinDecay:        1,
		Rollback:             true,
		Rand:                 rand.New(rand.NewSource(1)),
	}

	done := make(chan Outcome, 1)
	go func() {
		done <- search.Run(g, s, log, idx, params)
	}()

	time.Sleep(10 * time.Millisecond)
	search.Stop()

	select {
	case outcome := <-done:
		if outcome != Cancelled {
			t.Errorf("Run() = %v, want Cancelled", outcome)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("search did not exit within the grace window after Stop()")
	}

	for _, slot := range s.Slots() {
		if slot.IsFilled() {
			t.Errorf("rollback should have left slot %v unfilled", slot.Start)
		}
		if slot.Locked {
			t.Errorf("preamble locks should have been released after cancellation")
		}
	}
}

func TestSearch_IsSearchingFalseBeforeRun(t *testing.T) {
	search := NewSearch()
	if search.IsSearching() {
		t.Errorf("a fresh Search should not report searching before Run is called")
	}
}
