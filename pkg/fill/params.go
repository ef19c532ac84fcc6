// Package fill implements the autofill search (C7): a DFS over slot
// fills with an outer iterative-relaxation loop, randomized tie-breaks,
// cooperative cancellation, and a wall-clock budget.
package fill

import "math/rand"

// BranchingUnlimited is the sentinel Params.BranchingFactorLimit value
// meaning "no cap", spelled "none" in the spec prose.
const BranchingUnlimited = 0

// Params configures one autofill run (§4.6).
type Params struct {
	SecondsLimit          int     `validate:"required,gt=0"`
	BranchingFactorLimit  int     `validate:"gte=0"`
	Entropy               int     `validate:"gte=0,lte=100"`
	EntropyDecay          float64 `validate:"gte=0,lte=1"`
	ScoreMin              int     `validate:"gte=1,lte=100"`
	ScoreMinDecay         float64 `validate:"gte=0,lte=1"`
	Rollback              bool
	Rand                  *rand.Rand
}

// DefaultParams returns a conservative parameter set suitable for an
// interactive "fill this grid" request: a five second budget, no
// branching cap, mild entropy decay, and rollback on failure.
func DefaultParams() Params {
	return Params{
		SecondsLimit:         5,
		BranchingFactorLimit: BranchingUnlimited,
		Entropy:              20,
		EntropyDecay:         0.8,
		ScoreMin:             50,
		ScoreMinDecay:        0.8,
		Rollback:             true,
	}
}
