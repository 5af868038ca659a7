package mock

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind selects the identifier prefix.
type Kind string

const (
	KindCompletion Kind = "cmpl"
	KindChat       Kind = "chatcmpl"
	KindEmbedding  Kind = "emb"
	KindToolCall   Kind = "call"
)

// IDGenerator produces opaque response identifiers and creation timestamps.
// Uniqueness is best effort; nothing compares ids across calls.
type IDGenerator interface {
	Next(kind Kind) string
	Now() int64
}

type uuidGenerator struct {
	clock func() time.Time
}

// NewIDGenerator returns the process-local random generator.
func NewIDGenerator() IDGenerator {
	return &uuidGenerator{clock: time.Now}
}

func (g *uuidGenerator) Next(kind Kind) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")

	switch kind {
	case KindToolCall:
		return "call_" + suffix[:24]
	case KindChat:
		return string(kind) + "-" + suffix[:29]
	default:
		return string(kind) + "-" + suffix[:24]
	}
}

func (g *uuidGenerator) Now() int64 {
	return g.clock().Unix()
}
