package ngram

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/rano-oss/libchinese-go/pkg/config"
)

func TestScoreSequenceBasic(t *testing.T) {
	m := New()
	m.InsertUnigram("你", -1.0)
	m.InsertUnigram("好", -1.2)
	m.InsertBigram("你", "好", -0.2)

	cfg := &config.ScoringConfig{
		UnigramWeight: 0.3,
		BigramWeight:  0.6,
		TrigramWeight: 0.1,
	}

	score := m.ScoreSequence([]string{"你", "好"}, cfg)
	want := float32(-1.5)
	if math.Abs(float64(score-want)) > 1e-4 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestScoreSequenceEmptyIsNegInf(t *testing.T) {
	m := New()
	cfg := &config.ScoringConfig{UnigramWeight: 1}
	if score := m.ScoreSequence(nil, cfg); !math.IsInf(float64(score), -1) {
		t.Fatalf("expected -Inf, got %v", score)
	}
}

func TestScoreSequenceUnseenBigramBackoff(t *testing.T) {
	m := New()
	m.InsertUnigram("a", -2.0)
	m.InsertUnigram("b", -3.0)
	cfg := &config.ScoringConfig{UnigramWeight: 0.3, BigramWeight: 0.6, TrigramWeight: 0.1}

	score := m.ScoreSequence([]string{"a", "b"}, cfg)
	if math.IsInf(float64(score), 0) {
		t.Fatalf("expected finite backoff score, got %v", score)
	}
}

func TestNGramSaveLoadRoundtrip(t *testing.T) {
	m := New()
	m.InsertUnigram("a", -1.5)
	m.InsertBigram("a", "b", -0.5)
	m.InsertTrigram("a", "b", "c", -0.1)

	path := filepath.Join(t.TempDir(), "ngram.msgpack")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, ok := loaded.GetUnigram("a"); !ok || v != -1.5 {
		t.Fatalf("unigram a -> (%v, %v)", v, ok)
	}
	if v, ok := loaded.GetBigram("a", "b"); !ok || v != -0.5 {
		t.Fatalf("bigram a,b -> (%v, %v)", v, ok)
	}
	if v, ok := loaded.GetTrigram("a", "b", "c"); !ok || v != -0.1 {
		t.Fatalf("trigram a,b,c -> (%v, %v)", v, ok)
	}
}

func TestCountsToUnigramLogProb(t *testing.T) {
	counts := map[string]uint64{"a": 10, "b": 30}
	res := CountsToUnigramLogProb(counts, 0.0)

	want := float32(math.Log(0.25))
	if math.Abs(float64(res["a"]-want)) > 1e-6 {
		t.Fatalf("a -> %v, want %v", res["a"], want)
	}
}
