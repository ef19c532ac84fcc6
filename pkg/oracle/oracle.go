// Package oracle implements the solvability classifier (C6): a
// pre-emptive check of whether the current grid state can possibly
// reach a complete, dictionary-backed fill before the fill search wastes
// time discovering that by backtracking.
package oracle

import (
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/wordindex"
)

// Status is the tagged result of a solvability classification.
type Status int

const (
	// Solvable means every filled slot is valid and every unfilled slot
	// has at least one candidate in the index at scoreMin.
	Solvable Status = iota
	// Overdetermined means some unfilled slot has no candidate at all.
	Overdetermined
	// Invalid means some filled, unlocked slot's word is not in the
	// dictionary.
	Invalid
	// Duplicate means two or more filled slots hold the same word.
	Duplicate
	// Weak means a filled, unlocked slot's word scores below scoreMin.
	Weak
)

func (s Status) String() string {
	switch s {
	case Solvable:
		return "solvable"
	case Overdetermined:
		return "overdetermined"
	case Invalid:
		return "invalid"
	case Duplicate:
		return "duplicate"
	case Weak:
		return "weak"
	default:
		return "unknown"
	}
}

// Classify implements §4.5: walk every slot, short-circuiting on the
// first precondition violation, then check for duplicate filled words.
func Classify(slots []clue.Slot, index *wordindex.Index, scoreMin int) Status {
	for i := range slots {
		s := &slots[i]
		if s.IsFilled() {
			if s.Locked {
				continue
			}
			word := s.ToWord()
			if !index.Contains(word) {
				return Invalid
			}
			if index.FreqScore(word) < scoreMin {
				return Weak
			}
			continue
		}
		if !index.HasSolution(s, scoreMin) {
			return Overdetermined
		}
	}

	seen := make(map[string]bool)
	for i := range slots {
		s := &slots[i]
		if !s.IsFilled() {
			continue
		}
		key := s.Constraint.String()
		if seen[key] {
			return Duplicate
		}
		seen[key] = true
	}

	return Solvable
}

// IsSolved reports whether every slot is filled and every filled slot's
// word is present in the dictionary.
func IsSolved(slots []clue.Slot, index *wordindex.Index) bool {
	for i := range slots {
		s := &slots[i]
		if !s.IsFilled() {
			return false
		}
		if !index.Contains(s.ToWord()) {
			return false
		}
	}
	return true
}
