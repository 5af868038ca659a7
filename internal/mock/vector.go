package mock

import (
	"math"
	"math/rand/v2"
	"strings"
)

// DefaultEmbeddingDimensions is used for models without a configured size.
const DefaultEmbeddingDimensions = 1536

// VectorGenerator maps text to a fixed-length embedding. Output is a pure
// function of (text, model, dimensions): the seed is a digest of text and
// model and the expansion is a seeded PCG stream.
type VectorGenerator struct {
	defaults map[string]int
	fallback int
}

// NewVectorGenerator copies the per-model sizes; model ids are matched
// case-insensitively.
func NewVectorGenerator(defaults map[string]int, fallback int) *VectorGenerator {
	if fallback <= 0 {
		fallback = DefaultEmbeddingDimensions
	}
	sizes := make(map[string]int, len(defaults))
	for model, dims := range defaults {
		sizes[strings.ToLower(model)] = dims
	}
	return &VectorGenerator{defaults: sizes, fallback: fallback}
}

// DefaultDimensions is the native vector length of model.
func (g *VectorGenerator) DefaultDimensions(model string) int {
	if dims, ok := g.defaults[strings.ToLower(model)]; ok && dims > 0 {
		return dims
	}
	return g.fallback
}

// Length is min(dimensions, default) when dimensions is set, else default.
func (g *VectorGenerator) Length(model string, dimensions int) int {
	size := g.DefaultDimensions(model)
	if dimensions > 0 && dimensions < size {
		return dimensions
	}
	return size
}

// Vector returns a unit-length vector with components in [-1, 1].
func (g *VectorGenerator) Vector(text, model string, dimensions int) []float64 {
	seed := hashKey(text, model)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// truncation takes a prefix of the full-length stream
	vec := make([]float64, g.Length(model, dimensions))
	for i := range vec {
		vec[i] = rng.Float64()*2 - 1
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		return
	}
	for i := range vec {
		vec[i] /= magnitude
	}
}
