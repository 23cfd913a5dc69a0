// Package ngram implements a character/word n-gram statistical language
// model with interpolated scoring, plus a separate word-level bigram model
// for phrase-to-phrase transitions.
package ngram

import (
	"math"
	"os"

	"github.com/rano-oss/libchinese-go/pkg/config"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	oovFloor             = -20.0
	unseenBigramPenalty  = -3.0
	unseenTrigramPenalty = -1.5
)

type bigramKey struct{ W1, W2 string }
type trigramKey struct{ W1, W2, W3 string }

// NGramModel stores natural-log probabilities for unigrams, bigrams, and
// trigrams over arbitrary string tokens.
type NGramModel struct {
	Unigram map[string]float64     `msgpack:"unigram"`
	Bigram  map[bigramKey]float64  `msgpack:"bigram"`
	Trigram map[trigramKey]float64 `msgpack:"trigram"`
}

// New creates an empty model.
func New() *NGramModel {
	return &NGramModel{
		Unigram: make(map[string]float64),
		Bigram:  make(map[bigramKey]float64),
		Trigram: make(map[trigramKey]float64),
	}
}

func (m *NGramModel) InsertUnigram(w string, logP float64) {
	m.Unigram[w] = logP
}

func (m *NGramModel) InsertBigram(w1, w2 string, logP float64) {
	m.Bigram[bigramKey{w1, w2}] = logP
}

func (m *NGramModel) InsertTrigram(w1, w2, w3 string, logP float64) {
	m.Trigram[trigramKey{w1, w2, w3}] = logP
}

func (m *NGramModel) GetUnigram(w string) (float64, bool) {
	v, ok := m.Unigram[w]
	return v, ok
}

func (m *NGramModel) GetBigram(w1, w2 string) (float64, bool) {
	v, ok := m.Bigram[bigramKey{w1, w2}]
	return v, ok
}

func (m *NGramModel) GetTrigram(w1, w2, w3 string) (float64, bool) {
	v, ok := m.Trigram[trigramKey{w1, w2, w3}]
	return v, ok
}

// ScoreSequence scores tokens using linear interpolation of 1/2/3-gram
// ln-probabilities, with context-dependent reweighting and backoff
// smoothing for unseen n-grams. Returns negative infinity for an empty
// sequence.
func (m *NGramModel) ScoreSequence(tokens []string, cfg *config.ScoringConfig) float32 {
	if len(tokens) == 0 {
		return float32(math.Inf(-1))
	}
	var score float64
	for i := range tokens {
		score += m.scoreTokenWithBackoff(tokens, i, cfg)
	}
	return float32(score)
}

func (m *NGramModel) scoreTokenWithBackoff(tokens []string, i int, cfg *config.ScoringConfig) float64 {
	token := tokens[i]

	unigramProb, ok := m.GetUnigram(token)
	if !ok {
		unigramProb = oovFloor
	}

	var bigramProb float64
	if i >= 1 {
		if p, ok := m.GetBigram(tokens[i-1], token); ok {
			bigramProb = p
		} else {
			bigramProb = unigramProb + unseenBigramPenalty
		}
	} else {
		bigramProb = unigramProb
	}

	var trigramProb float64
	if i >= 2 {
		if p, ok := m.GetTrigram(tokens[i-2], tokens[i-1], token); ok {
			trigramProb = p
		} else {
			trigramProb = bigramProb + unseenTrigramPenalty
		}
	} else {
		trigramProb = bigramProb
	}

	weights := [3]float32{float32(cfg.UnigramWeight), float32(cfg.BigramWeight), float32(cfg.TrigramWeight)}
	var sum float32
	for _, w := range weights {
		sum += w
	}
	if sum > 0 {
		for i := range weights {
			weights[i] /= sum
		}
	}
	uw, bw, tw := float64(weights[0]), float64(weights[1]), float64(weights[2])

	var effUW, effBW, effTW float64
	switch {
	case i >= 2:
		effUW, effBW, effTW = uw, bw, tw
	case i >= 1:
		totalContextual := bw + tw
		effUW, effBW, effTW = uw, totalContextual*0.7, totalContextual*0.3
	default:
		effUW, effBW, effTW = 1.0, 0.0, 0.0
	}

	return effUW*unigramProb + effBW*bigramProb + effTW*trigramProb
}

// ScoreSequenceWithInterpolator scores tokens the same way as ScoreSequence
// but looks up per-key interpolation weights from interp, falling back to
// cfg's weights when keyForLookup has no entry. This path uses plain
// nearest-order fallback (unigram -> bigram -> trigram) rather than the
// penalized backoff of ScoreSequence.
func (m *NGramModel) ScoreSequenceWithInterpolator(tokens []string, cfg *config.ScoringConfig, keyForLookup string, interp *Interpolator) float32 {
	if len(tokens) == 0 {
		return float32(math.Inf(-1))
	}

	weights := [3]float32{float32(cfg.UnigramWeight), float32(cfg.BigramWeight), float32(cfg.TrigramWeight)}
	if lambdas, ok := interp.Lookup(keyForLookup); ok {
		weights = lambdas
	}
	var sum float32
	for _, w := range weights {
		sum += w
	}
	if sum > 0 {
		for i := range weights {
			weights[i] /= sum
		}
	}
	uw, bw, tw := float64(weights[0]), float64(weights[1]), float64(weights[2])

	var score float64
	for i, tok := range tokens {
		u, ok := m.GetUnigram(tok)
		if !ok {
			u = oovFloor
		}

		b := u
		if i >= 1 {
			if p, ok := m.GetBigram(tokens[i-1], tok); ok {
				b = p
			}
		}

		t := b
		if i >= 2 {
			if p, ok := m.GetTrigram(tokens[i-2], tokens[i-1], tok); ok {
				t = p
			}
		}

		score += uw*u + bw*b + tw*t
	}
	return float32(score)
}

// ngramData is the msgpack-serializable shape of an NGramModel, since Go
// maps with struct keys need explicit slices to round-trip cleanly.
type ngramData struct {
	Unigram map[string]float64 `msgpack:"unigram"`
	Bigram  []bigramEntry      `msgpack:"bigram"`
	Trigram []trigramEntry     `msgpack:"trigram"`
}

type bigramEntry struct {
	W1, W2 string
	LogP   float64
}

type trigramEntry struct {
	W1, W2, W3 string
	LogP       float64
}

// Save serializes the model to path using msgpack.
func (m *NGramModel) Save(path string) error {
	data := ngramData{Unigram: m.Unigram}
	for k, v := range m.Bigram {
		data.Bigram = append(data.Bigram, bigramEntry{k.W1, k.W2, v})
	}
	for k, v := range m.Trigram {
		data.Trigram = append(data.Trigram, trigramEntry{k.W1, k.W2, k.W3, v})
	}
	b, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load deserializes a model previously written by Save.
func Load(path string) (*NGramModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data ngramData
	if err := msgpack.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	m := New()
	if data.Unigram != nil {
		m.Unigram = data.Unigram
	}
	for _, e := range data.Bigram {
		m.Bigram[bigramKey{e.W1, e.W2}] = e.LogP
	}
	for _, e := range data.Trigram {
		m.Trigram[trigramKey{e.W1, e.W2, e.W3}] = e.LogP
	}
	return m, nil
}

// CountsToUnigramLogProb converts token counts to natural-log probabilities
// using add-k smoothing.
func CountsToUnigramLogProb(counts map[string]uint64, k float32) map[string]float32 {
	out := make(map[string]float32, len(counts))
	var total float32
	for _, c := range counts {
		total += float32(c)
	}
	v := float32(len(counts))
	denom := total + k*v
	for tok, c := range counts {
		p := (float32(c) + k) / denom
		out[tok] = float32(math.Log(float64(p)))
	}
	return out
}
