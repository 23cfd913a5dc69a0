package ngram

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/rano-oss/libchinese-go/pkg/config"
)

func TestInterpolatorSetLookup(t *testing.T) {
	in := NewInterpolator()
	in.Set("ni", [3]float32{0.2, 0.5, 0.3})

	got, ok := in.Lookup("ni")
	if !ok || got != [3]float32{0.2, 0.5, 0.3} {
		t.Fatalf("lookup ni -> (%v, %v)", got, ok)
	}
	if _, ok := in.Lookup("missing"); ok {
		t.Fatal("expected no entry for missing key")
	}
}

func TestInterpolatorSaveLoadRoundtrip(t *testing.T) {
	in := NewInterpolator()
	in.Set("hao", [3]float32{0.1, 0.2, 0.7})

	path := filepath.Join(t.TempDir(), "interp.msgpack")
	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadInterpolator(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, ok := loaded.Lookup("hao"); !ok || got != [3]float32{0.1, 0.2, 0.7} {
		t.Fatalf("loaded lookup -> (%v, %v)", got, ok)
	}
}

func TestScoreSequenceWithInterpolatorFallsBackToConfig(t *testing.T) {
	m := New()
	m.InsertUnigram("a", -1.0)
	in := NewInterpolator()
	cfg := &config.ScoringConfig{UnigramWeight: 0.6, BigramWeight: 0.3, TrigramWeight: 0.1}

	got := m.ScoreSequenceWithInterpolator([]string{"a"}, cfg, "missing", in)
	want := m.ScoreSequence([]string{"a"}, cfg)
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Fatalf("score with missing interpolator key = %v, want cfg-weighted %v", got, want)
	}
}
