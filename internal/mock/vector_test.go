package mock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func TestVectorGenerator_Length(t *testing.T) {
	g := NewVectorGenerator(map[string]int{"Model-A": 32}, 0)

	assert.Equal(t, 32, g.DefaultDimensions("model-a"))
	assert.Equal(t, DefaultEmbeddingDimensions, g.DefaultDimensions("unknown"))
	assert.Equal(t, 32, g.Length("model-a", 0))
	assert.Equal(t, 10, g.Length("model-a", 10))
	assert.Equal(t, 32, g.Length("model-a", 64), "requests above the native size are capped")
}

func TestVectorGenerator_Vector(t *testing.T) {
	g := NewVectorGenerator(map[string]int{"m": 128}, 0)

	a := g.Vector("hello", "m", 0)
	b := g.Vector("hello", "m", 0)
	c := g.Vector("hello!", "m", 0)
	d := g.Vector("hello", "other", 0)

	require.Len(t, a, 128)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a[:8], d[:8])
	assert.InDelta(t, 1.0, norm(a), 1e-12)

	for _, v := range a {
		assert.True(t, v >= -1 && v <= 1)
	}
}

func TestVectorGenerator_TruncatedIsScaledPrefix(t *testing.T) {
	g := NewVectorGenerator(map[string]int{"m": 64}, 0)

	full := g.Vector("x", "m", 0)
	short := g.Vector("x", "m", 16)
	require.Len(t, short, 16)
	assert.InDelta(t, 1.0, norm(short), 1e-12)

	ratio := short[0] / full[0]
	for i := range short {
		assert.InDelta(t, full[i]*ratio, short[i], 1e-12)
	}
}

func TestHashKey_Separates(t *testing.T) {
	assert.NotEqual(t, hashKey("ab", "c"), hashKey("a", "bc"))
	assert.Equal(t, hashKey("a", "b"), hashKey("a", "b"))
}
