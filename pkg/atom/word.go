package atom

import "strings"

// Word is an ordered sequence of atoms of any length >= 0. Two words are
// equal iff they have the same length and the same atom at every
// position. Words are value-like: callers that need to mutate one in
// place should copy first.
type Word []Atom

// FromString builds a Word from an uppercase string, mapping any non
// A-Z rune (conventionally '_' or ' ') to Empty.
func FromString(s string) Word {
	w := make(Word, len(s))
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			w[i] = FromLetter(r)
		} else {
			w[i] = Empty
		}
	}
	return w
}

// String renders the word with Empty atoms shown as '_'.
func (w Word) String() string {
	var b strings.Builder
	b.Grow(len(w))
	for _, a := range w {
		if a.IsEmpty() {
			b.WriteByte('_')
		} else {
			b.WriteRune(a.Letter())
		}
	}
	return b.String()
}

// Equal reports whether two words have the same length and atoms.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders words first by length, then lexicographically by atom
// code.
func (w Word) Less(other Word) bool {
	if len(w) != len(other) {
		return len(w) < len(other)
	}
	for i := range w {
		if w[i] != other[i] {
			return w[i] < other[i]
		}
	}
	return false
}

// IsComplete reports whether the word contains no empty (wildcard)
// atoms. The empty word is complete.
func (w Word) IsComplete() bool {
	for _, a := range w {
		if a.IsEmpty() {
			return false
		}
	}
	return true
}

// Hash computes a deterministic, process-stable hash consistent with
// Equal: equal words always hash equal. Uses the FNV-1a recurrence over
// atom codes.
func (w Word) Hash() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211

	h := uint64(offset64)
	for _, a := range w {
		h ^= uint64(a)
		h *= prime64
	}
	// Mix in the length so e.g. "" and a word of repeated Empty atoms
	// of different lengths never collide trivially.
	h ^= uint64(len(w))
	h *= prime64
	return h
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// Matches reports whether w (a constraint, possibly partial) is
// compatible with candidate: same length, and every non-empty atom in w
// equals the atom at the same position in candidate.
func (w Word) Matches(candidate Word) bool {
	if len(w) != len(candidate) {
		return false
	}
	for i, a := range w {
		if !a.IsEmpty() && a != candidate[i] {
			return false
		}
	}
	return true
}
