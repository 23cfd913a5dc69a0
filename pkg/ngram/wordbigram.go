package ngram

import (
	"math"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// bigramCount is a single word2 entry in a word1 bigram distribution.
type bigramCount struct {
	Word  string `msgpack:"word"`
	Count uint32 `msgpack:"count"`
}

// WordBigram models P(word2 | word1) word-to-word transitions, used to
// score phrase sequences in candidate ranking.
type WordBigram struct {
	data   map[string][]bigramCount
	totals map[string]uint32
}

// NewWordBigram creates an empty word bigram model.
func NewWordBigram() *WordBigram {
	return &WordBigram{
		data:   make(map[string][]bigramCount),
		totals: make(map[string]uint32),
	}
}

// AddBigram records count observations of word2 following word1.
func (wb *WordBigram) AddBigram(word1, word2 string, count uint32) {
	wb.data[word1] = append(wb.data[word1], bigramCount{Word: word2, Count: count})
	wb.totals[word1] += count
}

// GetProbability returns P(word2 | word1), or 0 if the bigram is unseen.
func (wb *WordBigram) GetProbability(word1, word2 string) float32 {
	entries, ok := wb.data[word1]
	if !ok {
		return 0
	}
	total, ok := wb.totals[word1]
	if !ok || total == 0 {
		return 0
	}
	for _, e := range entries {
		if e.Word == word2 {
			return float32(e.Count) / float32(total)
		}
	}
	return 0
}

// GetLogProbability returns ln P(word2 | word1), or -20.0 if the bigram is
// unseen (matching the character n-gram model's OOV floor).
func (wb *WordBigram) GetLogProbability(word1, word2 string) float32 {
	p := wb.GetProbability(word1, word2)
	if p > 0 {
		return float32(math.Log(float64(p)))
	}
	return oovFloor
}

// Len returns the number of distinct word1 entries.
func (wb *WordBigram) Len() int {
	return len(wb.data)
}

// IsEmpty reports whether the model has no entries.
func (wb *WordBigram) IsEmpty() bool {
	return len(wb.data) == 0
}

// TotalBigrams returns the total number of (word1, word2) pairs observed.
func (wb *WordBigram) TotalBigrams() int {
	n := 0
	for _, entries := range wb.data {
		n += len(entries)
	}
	return n
}

type wordBigramData struct {
	Data   map[string][]bigramCount `msgpack:"data"`
	Totals map[string]uint32        `msgpack:"totals"`
}

// Save serializes the model to path using msgpack.
func (wb *WordBigram) Save(path string) error {
	b, err := msgpack.Marshal(wordBigramData{Data: wb.data, Totals: wb.totals})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// LoadWordBigram deserializes a model previously written by Save.
func LoadWordBigram(path string) (*WordBigram, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data wordBigramData
	if err := msgpack.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	wb := NewWordBigram()
	if data.Data != nil {
		wb.data = data.Data
	}
	if data.Totals != nil {
		wb.totals = data.Totals
	}
	return wb, nil
}
