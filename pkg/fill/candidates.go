package fill

import (
	"math"
	"math/rand"
	"sort"

	"github.com/crossplay/xword/pkg/actionlog"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
	"github.com/crossplay/xword/pkg/wordindex"
)

// sortedSlotOrder returns indices into slots ordered by (row+col)
// ascending, tie-broken by row ascending, tie-broken further so an
// across slot precedes a down slot starting at the same cell. This is
// the canonical order get_word_fills scans to find the next target.
func sortedSlotOrder(slots []clue.Slot) []int {
	order := make([]int, len(slots))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := slots[order[i]], slots[order[j]]
		sa := a.Start.Row + a.Start.Col
		sb := b.Start.Row + b.Start.Col
		if sa != sb {
			return sa < sb
		}
		if a.Start.Row != b.Start.Row {
			return a.Start.Row < b.Start.Row
		}
		return a.Direction == clue.Across && b.Direction != clue.Across
	})
	return order
}

// getWordFills implements get_word_fills (§4.6): pick the first
// unfilled slot in canonical order, query the index for matching
// complete words, shuffle the top entropy% of the candidate list, and
// emit one fill group per candidate, capped at branchingLimit unless
// branchingLimit is BranchingUnlimited. Returns nil if no unfilled slot
// remains.
func getWordFills(g *grid.Grid, slots []clue.Slot, idx *wordindex.Index, entropy, branchingLimit int, r *rand.Rand) []*actionlog.Group {
	order := sortedSlotOrder(slots)

	var target *clue.Slot
	for _, pos := range order {
		if !slots[pos].IsFilled() {
			target = &slots[pos]
			break
		}
	}
	if target == nil {
		return nil
	}

	candidates := idx.GetSolutions(target)

	k := int(math.Floor(math.Min(1.0, float64(entropy)/100.0) * float64(len(candidates))))
	if k > 1 {
		r.Shuffle(k, func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	if branchingLimit != BranchingUnlimited && len(candidates) > branchingLimit {
		candidates = candidates[:branchingLimit]
	}

	groups := make([]*actionlog.Group, len(candidates))
	for i, word := range candidates {
		groups[i] = clue.BuildFillGroup(g, target, word)
	}
	return groups
}
