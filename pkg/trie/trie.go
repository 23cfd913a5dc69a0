// Package trie wraps go-patricia's radix trie for syllable validation,
// prefix segmentation, and keyed payload lookup.
package trie

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Trie is a prefix tree over syllable (or lexicon key) strings.
type Trie struct {
	t *patricia.Trie
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{t: patricia.NewTrie()}
}

// Insert adds word to the trie. If word is already present, its stored
// value is left unchanged.
func (tr *Trie) Insert(word string) {
	tr.t.Insert(patricia.Prefix(word), true)
}

// InsertValue adds word to the trie carrying an arbitrary payload,
// retrievable with Get. If word is already present, its stored value is
// left unchanged.
func (tr *Trie) InsertValue(word string, value interface{}) {
	tr.t.Insert(patricia.Prefix(word), value)
}

// Get returns the value stored at word, or nil if word is not present.
func (tr *Trie) Get(word string) interface{} {
	return tr.t.Get(patricia.Prefix(word))
}

// ContainsWord reports whether word exists as a complete entry in the
// trie, not merely as a prefix of a longer entry.
func (tr *Trie) ContainsWord(word string) bool {
	return tr.t.Get(patricia.Prefix(word)) != nil
}

// PrefixMatch is one result of WalkPrefixes: a syllable ending at EndIndex
// (an exclusive rune index into the original input) with text Text.
type PrefixMatch struct {
	EndIndex int
	Text     string
}

// WalkPrefixes walks a single left-to-right path through input starting at
// the rune index start, and returns every complete entry found along that
// path, ordered by increasing length. This is the core operation used
// during DP segmentation: from a given position, find all valid syllables
// that can start there. It is distinct from a subtree visit — it follows
// one path down the trie, not every branch beneath a node.
func (tr *Trie) WalkPrefixes(input []rune, start int) []PrefixMatch {
	if start >= len(input) {
		return nil
	}

	remaining := string(input[start:])
	var res []PrefixMatch

	_ = tr.t.VisitPrefixes(patricia.Prefix(remaining), func(prefix patricia.Prefix, item patricia.Item) error {
		text := string(prefix)
		if text == "" {
			return nil
		}
		runeLen := len([]rune(text))
		res = append(res, PrefixMatch{EndIndex: start + runeLen, Text: text})
		return nil
	})

	return res
}

// FindCompletion returns every complete entry in the trie that has prefix
// as a strict or non-strict prefix, used for incremental syllable
// completion while the user is still typing a partial syllable.
func (tr *Trie) FindCompletion(prefix string) []string {
	var res []string
	_ = tr.t.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		res = append(res, string(p))
		return nil
	})
	return res
}
