package wordindex

import (
	"math"
	"sort"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
)

// atomScore is the precomputed per-letter frequency weight table used by
// letterScore. Index 0 (Empty) is always zero. Values approximate
// English letter frequency, scaled so common letters dominate the sum.
var atomScore = [atom.NumAtoms]float64{
	0:  0,
	1:  0.082, // A
	2:  0.015, // B
	3:  0.028, // C
	4:  0.043, // D
	5:  0.127, // E
	6:  0.022, // F
	7:  0.020, // G
	8:  0.061, // H
	9:  0.070, // I
	10: 0.002, // J
	11: 0.008, // K
	12: 0.040, // L
	13: 0.024, // M
	14: 0.067, // N
	15: 0.075, // O
	16: 0.019, // P
	17: 0.001, // Q
	18: 0.060, // R
	19: 0.063, // S
	20: 0.091, // T
	21: 0.028, // U
	22: 0.010, // V
	23: 0.024, // W
	24: 0.002, // X
	25: 0.020, // Y
	26: 0.001, // Z
}

// letterScore computes the §4.4.1 quality score of a complete word:
// the frequency-weighted sum of its letters times its count of
// distinct non-empty atoms, favoring both common letters and letter
// diversity for better search branching.
func letterScore(w atom.Word) int {
	var s float64
	seen := [atom.NumAtoms]bool{}
	distinct := 0
	for _, a := range w {
		s += atomScore[a]
		if !seen[a] {
			seen[a] = true
			distinct++
		}
	}
	s *= 1000
	return int(math.Floor(s * float64(distinct)))
}

type loadState int

const (
	neverLoaded loadState = iota
	loading
	loaded
)

type entry struct {
	Word        atom.Word
	RawFreq     int
	FreqScore   int
	LetterScore int
}

const partialCacheLimit = 4096

// lengthStore holds every dictionary entry of one fixed word length: a
// descending-by-letter-score slice, a word-set for membership and score
// lookup, a trie for wildcard queries, and a bounded has-solution memo.
type lengthStore struct {
	entries      []entry
	wordSet      map[string]int
	trie         *trie
	partialCache map[string]bool
	state        loadState
}

func newLengthStore() *lengthStore {
	return &lengthStore{
		wordSet:      make(map[string]int),
		trie:         newTrie(),
		partialCache: make(map[string]bool),
	}
}

// addEntry inserts a word during the loading pipeline (§4.4 step 3).
// rawFreq is the unnormalized frequency read from the dictionary file;
// normalize must run once after every addEntry call for the length is
// complete.
func (ls *lengthStore) addEntry(word atom.Word, rawFreq int) {
	ls.entries = append(ls.entries, entry{Word: word.Clone(), RawFreq: rawFreq, FreqScore: rawFreq, LetterScore: letterScore(word)})
	ls.wordSet[word.String()] = rawFreq
	ls.trie.insert(word, rawFreq)
}

// normalize applies §4.4.2 frequency normalization across every entry
// of this length, pushes the normalized score into the trie nodes so
// wildcard lookups rank by it, then re-sorts entries by descending
// letter score.
func (ls *lengthStore) normalize() {
	if len(ls.entries) == 0 {
		return
	}

	raw := make([]float64, len(ls.entries))
	var sum float64
	for i, e := range ls.entries {
		raw[i] = float64(e.RawFreq)
		sum += raw[i]
	}
	mean := sum / float64(len(raw))

	var variance float64
	for _, v := range raw {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(raw))
	stddev := math.Sqrt(variance)

	const maxSigma = 1.0
	const minSigma = 2.0

	for i := range ls.entries {
		var sigma float64
		if stddev == 0 {
			sigma = 0
		} else {
			sigma = (raw[i] - mean) / stddev
		}
		if sigma > 0 {
			sigma /= maxSigma
		} else {
			sigma /= minSigma
		}
		if sigma > 1 {
			sigma = 1
		} else if sigma < -1 {
			sigma = -1
		}

		final := int(math.Round(50 + 50*sigma))
		if final < 1 {
			final = 1
		} else if final > 100 {
			final = 100
		}

		ls.entries[i].FreqScore = final
		ls.wordSet[ls.entries[i].Word.String()] = final
		ls.trie.insert(ls.entries[i].Word, final)
	}

	sort.Slice(ls.entries, func(i, j int) bool {
		return ls.entries[i].LetterScore > ls.entries[j].LetterScore
	})

	ls.partialCache = make(map[string]bool)
}

// contains reports whether word is a complete dictionary entry of this
// length.
func (ls *lengthStore) contains(word atom.Word) bool {
	_, ok := ls.wordSet[word.String()]
	return ok
}

// freqScore returns the normalized frequency score of word, or 0 if it
// is not present.
func (ls *lengthStore) freqScore(word atom.Word) int {
	return ls.wordSet[word.String()]
}

// find runs the §4.4.3 wildcard query against the trie, returning every
// complete word matching partial (atom.Empty positions are wildcards).
func (ls *lengthStore) find(partial atom.Word) []atom.Word {
	results := ls.trie.match(partial)
	out := make([]atom.Word, len(results))
	for i, r := range results {
		out[i] = r.Word
	}
	return out
}

// hasSolution implements has_solution: a memoized existence check over
// entries in descending-letter-score order, returning true on the first
// entry whose freq score meets scoreMin and which matches slot's
// current constraint. The cache key intentionally ignores scoreMin,
// preserving the documented caching flaw; callers must flushCache
// between search iterations that change scoreMin.
func (ls *lengthStore) hasSolution(slot *clue.Slot, scoreMin int) bool {
	key := slot.Constraint.String()
	if v, ok := ls.partialCache[key]; ok {
		return v
	}

	found := false
	for _, e := range ls.entries {
		if e.FreqScore < scoreMin {
			continue
		}
		if slot.Constraint.Matches(e.Word) {
			found = true
			break
		}
	}

	if len(ls.partialCache) >= partialCacheLimit {
		ls.partialCache = make(map[string]bool)
	}
	ls.partialCache[key] = found
	return found
}

// flushCache clears the has-solution memo. Called at the start of every
// outer search iteration since the cache key ignores scoreMin.
func (ls *lengthStore) flushCache() {
	ls.partialCache = make(map[string]bool)
}
