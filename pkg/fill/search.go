package fill

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/crossplay/xword/pkg/actionlog"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
	"github.com/crossplay/xword/pkg/oracle"
	"github.com/crossplay/xword/pkg/wordindex"
)

// Outcome is the terminal result of a Run call. All four are normal
// results, never errors.
type Outcome int

const (
	Solved Outcome = iota
	Exhausted
	Cancelled
	DeadlineReached
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	case DeadlineReached:
		return "deadline-reached"
	default:
		return "unknown"
	}
}

// Search runs one autofill attempt. stop, externalStop and done are the
// three flags shared across the search goroutine, the deadline watchdog,
// and any UI refresh ticker reading progress; all three must stay atomic
// with sequentially-consistent semantics since they are the only
// cross-task mutable state during a run. externalStop records that the
// stop came from Stop rather than from the deadline.
type Search struct {
	stop         atomic.Bool
	externalStop atomic.Bool
	done         atomic.Bool
}

// NewSearch returns a Search ready to Run. done starts true so
// IsSearching reports false before the first Run call.
func NewSearch() *Search {
	s := &Search{}
	s.done.Store(true)
	return s
}

// Stop sets the cooperative cancellation flag. Idempotent; safe to call
// from any goroutine, including before Run starts or after it finishes.
func (s *Search) Stop() {
	s.stop.Store(true)
	s.externalStop.Store(true)
}

// IsSearching reports whether a Run call is currently in flight.
func (s *Search) IsSearching() bool {
	return !s.done.Load()
}

type node struct {
	action      *actionlog.Group
	targetDepth int
}

// Run executes the autofill search described by params against g,
// structure, and log, consulting idx for candidates. It mutates all
// three as it explores. On any outcome other than Solved, if
// params.Rollback is set the log is restored to the size it held when
// Run was called. Every cell locked by the preamble is unlocked when
// Run returns, whatever the outcome and whether or not Rollback is set.
func (s *Search) Run(g *grid.Grid, structure *clue.Structure, log *actionlog.Log, idx *wordindex.Index, params Params) Outcome {
	s.stop.Store(false)
	s.externalStop.Store(false)
	s.done.Store(false)
	defer s.done.Store(true)

	r := params.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	initialDepth := log.Size()
	lockedByUs := lockFilledCells(g, structure)
	defer unlockCells(g, structure, lockedByUs)

	timer := time.AfterFunc(time.Duration(params.SecondsLimit)*time.Second, func() {
		s.stop.Store(true)
	})
	defer timer.Stop()

	scoreMin := params.ScoreMin
	entropy := params.Entropy

	outcome := Exhausted
	for !s.stop.Load() && scoreMin > 0 {
		idx.FlushCaches()

		solved, cancelled := s.dfsIteration(g, structure, log, idx, scoreMin, entropy, params, initialDepth, r)
		if solved {
			outcome = Solved
			break
		}
		if cancelled {
			break
		}

		if params.Rollback {
			log.RollbackTo(initialDepth)
		}

		scoreMin = int(math.Floor(float64(scoreMin) * params.ScoreMinDecay))
		entropy = int(math.Floor(float64(entropy) * params.EntropyDecay))
	}

	if outcome != Solved {
		switch {
		case s.externalStop.Load():
			outcome = Cancelled
		case s.stop.Load():
			outcome = DeadlineReached
		default:
			outcome = Exhausted
		}
		if params.Rollback {
			log.RollbackTo(initialDepth)
		}
	}

	return outcome
}

// dfsIteration runs one pass of the explicit-stack DFS described in
// §4.6. It returns solved=true on a complete dictionary-backed fill, or
// cancelled=true if the stop flag was observed before the stack
// emptied.
func (s *Search) dfsIteration(g *grid.Grid, structure *clue.Structure, log *actionlog.Log, idx *wordindex.Index, scoreMin, entropy int, params Params, initialDepth int, r *rand.Rand) (solved, cancelled bool) {
	stack := []node{{action: actionlog.NewGroup(), targetDepth: initialDepth + 1}}

	for len(stack) > 0 {
		if s.stop.Load() {
			return false, true
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		log.RollbackTo(top.targetDepth - 1)
		log.Apply(top.action)

		slots := structure.Slots()
		status := oracle.Classify(slots, idx, scoreMin)
		if status != oracle.Solvable {
			continue
		}
		if oracle.IsSolved(slots, idx) {
			return true, false
		}

		currentDepth := log.Size()
		candidates := getWordFills(g, slots, idx, entropy, params.BranchingFactorLimit, r)
		for i := len(candidates) - 1; i >= 0; i-- {
			stack = append(stack, node{action: candidates[i], targetDepth: currentDepth + 1})
		}
	}

	return false, false
}

// lockFilledCells locks every currently filled open cell and returns
// the coordinates that were not already locked, so the caller can
// release exactly those at the end of the search.
func lockFilledCells(g *grid.Grid, structure *clue.Structure) []grid.Coord {
	var locked []grid.Coord
	h, w := g.Height(), g.Width()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := grid.Coord{Row: row, Col: col}
			if g.IsBarrier(c) {
				continue
			}
			if g.IsFilled(c) && !g.IsLocked(c) {
				g.SetLocked(c, true)
				structure.UpdateConstraint(c)
				locked = append(locked, c)
			}
		}
	}
	return locked
}

func unlockCells(g *grid.Grid, structure *clue.Structure, cells []grid.Coord) {
	for _, c := range cells {
		g.SetLocked(c, false)
		structure.UpdateConstraint(c)
	}
}
