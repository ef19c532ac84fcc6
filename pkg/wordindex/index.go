// Package wordindex implements the length-partitioned dictionary index
// (C5): one trie-backed store per word length, letter-score and
// frequency-normalization scoring, and the has-solution / get-solutions
// queries the oracle and fill search run against.
package wordindex

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
)

// Index is an array of per-length stores, one single writer-guarded
// loader, and a fingerprint of the last file it was loaded from.
type Index struct {
	mu          sync.Mutex
	stores      [grid.MaxDim + 1]*lengthStore
	fingerprint [blake2b.Size256]byte
	hasFP       bool
}

// NewIndex builds an empty index with every length store allocated.
func NewIndex() *Index {
	idx := &Index{}
	for i := range idx.stores {
		idx.stores[i] = newLengthStore()
	}
	return idx
}

func (idx *Index) storeFor(length int) *lengthStore {
	if length < 0 || length >= len(idx.stores) {
		panic(fmt.Sprintf("wordindex: length %d out of range", length))
	}
	return idx.stores[length]
}

// AddEntry inserts one dictionary word directly, bypassing file
// loading. Used by interactive "teach the index a word" tooling and by
// tests. Words of length >= MAX_DIM are dropped.
func (idx *Index) AddEntry(word atom.Word, rawFreq int) {
	if len(word) >= grid.MaxDim {
		return
	}
	idx.storeFor(len(word)).addEntry(word, rawFreq)
	idx.storeFor(len(word)).normalize()
}

// Contains reports whether word is present at its length.
func (idx *Index) Contains(word atom.Word) bool {
	if len(word) >= len(idx.stores) {
		return false
	}
	return idx.storeFor(len(word)).contains(word)
}

// FreqScore returns the normalized frequency score of word, or 0 if
// absent.
func (idx *Index) FreqScore(word atom.Word) int {
	if len(word) >= len(idx.stores) {
		return 0
	}
	return idx.storeFor(len(word)).freqScore(word)
}

// GetSolutions returns every complete word matching slot's current
// constraint, sorted by descending normalized frequency score (the
// trie stores that score per word and match() sorts by it).
func (idx *Index) GetSolutions(slot *clue.Slot) []atom.Word {
	return idx.storeFor(slot.Length).find(slot.Constraint)
}

// HasSolution reports whether some complete word at scoreMin or above
// matches slot's current constraint, using the per-length memoized
// existence check.
func (idx *Index) HasSolution(slot *clue.Slot, scoreMin int) bool {
	return idx.storeFor(slot.Length).hasSolution(slot, scoreMin)
}

// FlushCaches clears the has-solution memo at every length. Must be
// called at the start of every outer search iteration, since the
// memo's cache key ignores score_min.
func (idx *Index) FlushCaches() {
	for _, s := range idx.stores {
		s.flushCache()
	}
}

// IsLoaded reports whether every length store has completed at least
// one load.
func (idx *Index) IsLoaded() bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, s := range idx.stores {
		if s.state != loaded {
			return false
		}
	}
	return true
}

// WaitForLoad blocks until any in-flight deferred load completes. Reads
// that need a guaranteed-complete index must call this first; reads
// that tolerate a partially-loaded index may skip it.
func (idx *Index) WaitForLoad() {
	idx.mu.Lock()
	idx.mu.Unlock()
}

// Fingerprint returns the blake2b-256 digest of the last successfully
// loaded dictionary file, and whether one has been computed yet.
func (idx *Index) Fingerprint() ([blake2b.Size256]byte, bool) {
	return idx.fingerprint, idx.hasFP
}

// LoadFromFile loads a dictionary synchronously under the writer lock,
// in "WORD SCORE" format, one entry per line. Words of length >=
// MAX_DIM are skipped. On success every length store is renormalized
// and the file's fingerprint recorded; on failure the index is left
// exactly as it was before the call.
func (idx *Index) LoadFromFile(path string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.loadLocked(path)
}

// LoadDeferred starts loading path on a background goroutine and
// returns immediately. Every length store is marked loading until the
// goroutine finishes. Concurrent reads that call WaitForLoad block
// until the load completes; queries that do not require completeness
// may proceed against whatever is already loaded.
func (idx *Index) LoadDeferred(path string) {
	idx.mu.Lock()
	for _, s := range idx.stores {
		s.state = loading
	}

	// The lock taken above is held until the goroutine finishes, so a
	// WaitForLoad call made after LoadDeferred returns always waits.
	go func() {
		defer idx.mu.Unlock()
		if err := idx.loadLocked(path); err != nil {
			for _, s := range idx.stores {
				s.state = neverLoaded
			}
		}
	}()
}

func (idx *Index) loadLocked(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("wordindex: opening dictionary %q: %w", path, err)
	}
	defer f.Close()

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return fmt.Errorf("wordindex: building fingerprint hasher: %w", err)
	}

	// Entries are collected first and added only once the whole file has
	// parsed, so a malformed line leaves the index unchanged.
	type parsedEntry struct {
		word  atom.Word
		score int
	}
	var parsed []parsedEntry

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		hasher.Write([]byte(line))
		hasher.Write([]byte{'\n'})

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return fmt.Errorf("wordindex: dictionary line %d: expected \"WORD SCORE\", got %q", lineNum, line)
		}

		text := strings.ToUpper(fields[0])
		score, err := strconv.Atoi(fields[1])
		if err != nil || score < 0 {
			return fmt.Errorf("wordindex: dictionary line %d: invalid score %q: %w", lineNum, fields[1], err)
		}

		word := atom.FromString(text)
		if len(word) >= grid.MaxDim {
			continue
		}

		parsed = append(parsed, parsedEntry{word: word, score: score})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wordindex: reading dictionary %q: %w", path, err)
	}

	touched := make(map[int]bool)
	for _, p := range parsed {
		idx.storeFor(len(p.word)).addEntry(p.word, p.score)
		touched[len(p.word)] = true
	}

	lengths := make([]int, 0, len(touched))
	for length := range touched {
		idx.stores[length].normalize()
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)
	for _, length := range lengths {
		log.Printf("wordindex: loaded %d words of length %d from %s", len(idx.stores[length].entries), length, path)
	}

	for _, s := range idx.stores {
		s.state = loaded
	}

	idx.fingerprint = *(*[blake2b.Size256]byte)(hasher.Sum(nil))
	idx.hasFP = true

	return nil
}
