package ngram

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Interpolator holds per-key interpolation weight triples (unigram,
// bigram, trigram), substituting the fst map + bincode vector pair with a
// single msgpack-encoded map (see DESIGN.md for the rationale).
type Interpolator struct {
	lambdas map[string][3]float32
}

// NewInterpolator creates an empty interpolator.
func NewInterpolator() *Interpolator {
	return &Interpolator{lambdas: make(map[string][3]float32)}
}

// EmptyForTest returns an interpolator with a single default lambda triple,
// for use in tests only.
func EmptyForTest() *Interpolator {
	return &Interpolator{lambdas: map[string][3]float32{"": {0.33, 0.33, 0.34}}}
}

// Set registers the lambda triple for key.
func (in *Interpolator) Set(key string, lambdas [3]float32) {
	in.lambdas[key] = lambdas
}

// Lookup returns the lambda triple registered for key.
func (in *Interpolator) Lookup(key string) ([3]float32, bool) {
	v, ok := in.lambdas[key]
	return v, ok
}

// Save serializes the interpolator to path using msgpack.
func (in *Interpolator) Save(path string) error {
	b, err := msgpack.Marshal(in.lambdas)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// LoadInterpolator deserializes an interpolator previously written by Save.
func LoadInterpolator(path string) (*Interpolator, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lambdas map[string][3]float32
	if err := msgpack.Unmarshal(b, &lambdas); err != nil {
		return nil, err
	}
	return &Interpolator{lambdas: lambdas}, nil
}
