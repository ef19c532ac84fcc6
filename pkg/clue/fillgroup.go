package clue

import (
	"fmt"

	"github.com/crossplay/xword/pkg/actionlog"
	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/grid"
)

// BuildFillGroup constructs the Group that fills slot with word: one
// SetCell per position whose current constraint is blank, so the group
// only ever fills in blanks and never overwrites an existing letter.
// Panics if word's length does not match the slot or does not fit the
// slot's current constraint - both are caller preconditions.
func BuildFillGroup(g *grid.Grid, slot *Slot, word atom.Word) *actionlog.Group {
	if len(word) != slot.Length {
		panic(fmt.Sprintf("clue: fill word length %d does not match slot length %d", len(word), slot.Length))
	}
	if !slot.Constraint.Matches(word) {
		panic("clue: fill word does not fit slot constraint")
	}

	var actions []actionlog.Action
	for i, c := range slot.Cells {
		if slot.Constraint[i].IsEmpty() {
			actions = append(actions, actionlog.NewSetCell(g, c, word[i]))
		}
	}
	return actionlog.NewGroup(actions...)
}

// BuildClearGroup constructs the Group that clears every currently
// filled, unlocked cell in slot back to empty.
func BuildClearGroup(g *grid.Grid, slot *Slot) *actionlog.Group {
	var actions []actionlog.Action
	for i, c := range slot.Cells {
		if slot.Constraint[i].IsEmpty() || g.IsLocked(c) {
			continue
		}
		actions = append(actions, actionlog.NewSetCell(g, c, atom.Empty))
	}
	return actionlog.NewGroup(actions...)
}
