package wordindex

import (
	"sort"

	"github.com/crossplay/xword/pkg/atom"
)

// trieNode is one position in a prefix tree keyed by atom rather than
// rune: the alphabet is the closed 27-symbol set, not arbitrary UTF-8.
type trieNode struct {
	children map[atom.Atom]*trieNode
	isEnd    bool
	score    int
	word     atom.Word
}

// trie is a prefix tree over complete words of one fixed length,
// supporting wildcard lookups where atom.Empty matches any letter.
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: make(map[atom.Atom]*trieNode)}}
}

// insert adds word to the trie with its quality score. Panics if word
// is not complete - partial words never belong in the index.
func (t *trie) insert(word atom.Word, score int) {
	if len(word) == 0 {
		return
	}
	if !word.IsComplete() {
		panic("wordindex: trie insert of a word containing blanks")
	}

	node := t.root
	for _, a := range word {
		if node.children == nil {
			node.children = make(map[atom.Atom]*trieNode)
		}
		child, exists := node.children[a]
		if !exists {
			child = &trieNode{children: make(map[atom.Atom]*trieNode)}
			node.children[a] = child
		}
		node = child
	}
	node.isEnd = true
	node.score = score
	node.word = word.Clone()
}

// matchResult is a complete word matching a wildcard pattern, with its
// quality score.
type matchResult struct {
	Word  atom.Word
	Score int
}

// match finds every complete word fitting pattern, where atom.Empty
// matches any letter. Results are sorted by score descending; equal
// scores are in word order.
func (t *trie) match(pattern atom.Word) []matchResult {
	var results []matchResult
	t.matchHelper(t.root, pattern, 0, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Word.Less(results[j].Word)
	})

	return results
}

func (t *trie) matchHelper(node *trieNode, pattern atom.Word, pos int, results *[]matchResult) {
	if node == nil {
		return
	}

	if pos == len(pattern) {
		if node.isEnd {
			*results = append(*results, matchResult{Word: node.word, Score: node.score})
		}
		return
	}

	a := pattern[pos]
	if a.IsEmpty() {
		for _, child := range node.children {
			t.matchHelper(child, pattern, pos+1, results)
		}
		return
	}

	if child, exists := node.children[a]; exists {
		t.matchHelper(child, pattern, pos+1, results)
	}
}

// contains reports whether word exists in the trie as a complete entry.
func (t *trie) contains(word atom.Word) bool {
	node := t.root
	for _, a := range word {
		if node.children == nil {
			return false
		}
		child, exists := node.children[a]
		if !exists {
			return false
		}
		node = child
	}
	return node.isEnd
}
