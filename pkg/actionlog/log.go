package actionlog

import "github.com/crossplay/xword/pkg/grid"

// Log is an ordered sequence of actions plus an index i one past the
// last applied action. i == len(stack) means nothing to redo; i == 0
// means nothing to undo. Pushing at i < len(stack) truncates the tail
// before appending, discarding the redo branch.
type Log struct {
	g     *grid.Grid
	stack []Action
	i     int

	// OnChange, if set, is called once per coordinate touched by an
	// action immediately after that action's Apply or Invert runs. The
	// clue structure's constraint mirror is wired in here by whatever
	// constructs the log and structure together, so cell edits made
	// through the log stay reflected in slot constraints without the
	// log needing to import pkg/clue.
	OnChange func(grid.Coord)
}

// NewLog creates an empty log bound to g. All Apply/Undo/Redo calls
// mutate g directly; the log owns no copy of grid state.
func NewLog(g *grid.Grid) *Log {
	return &Log{g: g}
}

func (l *Log) notify(action Action) {
	if l.OnChange == nil {
		return
	}
	for _, c := range action.Coords() {
		l.OnChange(c)
	}
}

// Apply executes action against the bound grid, discards any redo tail,
// and appends action to the history.
func (l *Log) Apply(action Action) {
	action.Apply(l.g)
	l.stack = append(l.stack[:l.i], action)
	l.i++
	l.notify(action)
}

// Undo inverts the most recently applied action and moves the index
// back one. Returns false if there is nothing to undo.
func (l *Log) Undo() bool {
	if l.i == 0 {
		return false
	}
	l.i--
	l.stack[l.i].Invert(l.g)
	l.notify(l.stack[l.i])
	return true
}

// Redo re-applies the next action in the redo tail and moves the index
// forward one. Returns false if there is nothing to redo.
func (l *Log) Redo() bool {
	if l.i == len(l.stack) {
		return false
	}
	l.stack[l.i].Apply(l.g)
	l.i++
	l.notify(l.stack[l.i-1])
	return true
}

// Size returns the number of currently applied actions (the index i).
func (l *Log) Size() int {
	return l.i
}

// RollbackTo undoes actions until Size() equals target. target must be
// between 0 and the log's current Size(); it is a precondition
// violation (panic) to ask for a size beyond what is currently applied,
// since RollbackTo never replays the redo tail.
func (l *Log) RollbackTo(target int) {
	if target < 0 || target > l.i {
		panic("actionlog: RollbackTo target out of range")
	}
	for l.i > target {
		l.Undo()
	}
}
