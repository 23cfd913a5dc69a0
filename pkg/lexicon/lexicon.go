// Package lexicon provides a serializable phonetic-key-to-phrase index.
//
// Keys are caller-joined phonetic strings (eg. concatenated Pinyin
// syllables); Lexicon itself is agnostic to the joiner. A patricia trie
// maps each key to an index into a parallel phrase-bucket slice, which is
// the correctness-first, fst-free stand-in for the upstream fst+bincode
// phrase index (see DESIGN.md for the substitution rationale).
package lexicon

import (
	"os"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// PhraseEntry is a single candidate phrase with a frequency weight.
type PhraseEntry struct {
	Text string `msgpack:"text"`
	Freq uint64 `msgpack:"freq"`
}

// Lexicon maps a phonetic key to the phrases registered under it.
type Lexicon struct {
	trie    *patricia.Trie
	buckets [][]PhraseEntry
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{trie: patricia.NewTrie()}
}

func (lx *Lexicon) bucketIndex(key string) (int, bool) {
	v := lx.trie.Get(patricia.Prefix(key))
	if v == nil {
		return 0, false
	}
	return v.(int), true
}

// Insert adds phrase under key with the given frequency. If phrase already
// exists under key its frequency is incremented (saturating on overflow)
// rather than duplicated.
func (lx *Lexicon) Insert(key, phrase string, freq uint64) {
	idx, ok := lx.bucketIndex(key)
	if !ok {
		idx = len(lx.buckets)
		lx.buckets = append(lx.buckets, nil)
		lx.trie.Insert(patricia.Prefix(key), idx)
	}

	bucket := lx.buckets[idx]
	for i := range bucket {
		if bucket[i].Text == phrase {
			bucket[i].Freq = saturatingAdd(bucket[i].Freq, freq)
			lx.buckets[idx] = bucket
			return
		}
	}
	lx.buckets[idx] = append(bucket, PhraseEntry{Text: phrase, Freq: freq})
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

// PushEntry appends entry directly under key, without merging against an
// existing phrase of the same text. Intended for bulk loading.
func (lx *Lexicon) PushEntry(key string, entry PhraseEntry) {
	idx, ok := lx.bucketIndex(key)
	if !ok {
		idx = len(lx.buckets)
		lx.buckets = append(lx.buckets, nil)
		lx.trie.Insert(patricia.Prefix(key), idx)
	}
	lx.buckets[idx] = append(lx.buckets[idx], entry)
}

// Lookup returns the phrase texts registered under key.
func (lx *Lexicon) Lookup(key string) []string {
	idx, ok := lx.bucketIndex(key)
	if !ok {
		return nil
	}
	bucket := lx.buckets[idx]
	out := make([]string, len(bucket))
	for i, e := range bucket {
		out[i] = e.Text
	}
	return out
}

// LookupEntries returns the full phrase entries registered under key.
func (lx *Lexicon) LookupEntries(key string) []PhraseEntry {
	idx, ok := lx.bucketIndex(key)
	if !ok {
		return nil
	}
	out := make([]PhraseEntry, len(lx.buckets[idx]))
	copy(out, lx.buckets[idx])
	return out
}

// RemovePhrase removes phrase from key's bucket, reporting whether it was
// present.
func (lx *Lexicon) RemovePhrase(key, phrase string) bool {
	idx, ok := lx.bucketIndex(key)
	if !ok {
		return false
	}
	bucket := lx.buckets[idx]
	for i, e := range bucket {
		if e.Text == phrase {
			lx.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of distinct keys in the lexicon.
func (lx *Lexicon) Len() int {
	return len(lx.buckets)
}

// IsEmpty reports whether the lexicon has no keys.
func (lx *Lexicon) IsEmpty() bool {
	return len(lx.buckets) == 0
}

// LoadDemo returns a small lexicon seeded with a few phrases, for
// smoke-testing.
func LoadDemo() *Lexicon {
	lx := New()
	lx.Insert("nihao", "你好", 10)
	lx.Insert("nihao", "你号", 1)
	lx.Insert("zhongguo", "中国", 20)
	lx.Insert("zhongguo", "中华", 4)
	return lx
}

// lexiconData is the on-disk msgpack shape: keys in bucket-index order
// paired with their phrase buckets.
type lexiconData struct {
	Keys    []string      `msgpack:"keys"`
	Buckets [][]PhraseEntry `msgpack:"buckets"`
}

// Save serializes the lexicon to path using msgpack.
func (lx *Lexicon) Save(path string) error {
	data := lexiconData{
		Keys:    make([]string, len(lx.buckets)),
		Buckets: lx.buckets,
	}
	lx.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		data.Keys[item.(int)] = string(prefix)
		return nil
	})

	b, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load deserializes a lexicon previously written by Save.
func Load(path string) (*Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data lexiconData
	if err := msgpack.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	lx := New()
	lx.buckets = data.Buckets
	for i, key := range data.Keys {
		lx.trie.Insert(patricia.Prefix(key), i)
	}
	return lx, nil
}
