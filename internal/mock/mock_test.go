package mock

import (
	"fmt"
	"sync/atomic"
)

// seqIDs is a predictable IDGenerator for tests.
type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Next(kind Kind) string {
	return fmt.Sprintf("%s-%d", kind, g.n.Add(1))
}

func (g *seqIDs) Now() int64 { return 1700000000 }

func newTestSynthesizer(t interface{ Fatalf(string, ...any) }) *Synthesizer {
	s, err := New(Config{
		CompletionPool: []string{
			"alpha beta gamma delta epsilon zeta eta theta iota kappa",
			"the quick brown fox jumps over the lazy dog",
		},
		ChatPool: []string{
			"Hello there, this is a mock reply. It has two sentences.",
			"Another canned answer for the chat endpoint.",
		},
		Dimensions:         map[string]int{"Small-Model": 8, "big-model": 64},
		FallbackDimensions: 16,
	}, &seqIDs{})
	if err != nil {
		t.Fatalf("new synthesizer: %v", err)
	}
	return s
}
