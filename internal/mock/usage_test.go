package mock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	var u UsageCalculator

	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   \n", 0},
		{"hello", 2},
		{"a b c d", 4},
		{"abcdefgh", 2},
		{"héllo wörld", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, u.Estimate(tt.text), tt.text)
	}
}

func TestTruncate(t *testing.T) {
	var u UsageCalculator

	t.Run("under the cap", func(t *testing.T) {
		out, cut := u.Truncate("short text", 10)
		assert.False(t, cut)
		assert.Equal(t, "short text", out)
	})

	t.Run("disabled", func(t *testing.T) {
		out, cut := u.Truncate("short text", 0)
		assert.False(t, cut)
		assert.Equal(t, "short text", out)
	})

	t.Run("word boundary", func(t *testing.T) {
		text := "one two three four five six seven eight"
		out, cut := u.Truncate(text, 3)
		assert.True(t, cut)
		assert.True(t, strings.HasPrefix(text, out))
		assert.LessOrEqual(t, u.Estimate(out), 3)
		assert.False(t, strings.HasSuffix(out, " "))
		assert.NotEmpty(t, out)
	})

	t.Run("single long word", func(t *testing.T) {
		out, cut := u.Truncate("abcdefghijklmnop", 1)
		assert.True(t, cut)
		assert.Equal(t, "abcd", out)
	})
}
