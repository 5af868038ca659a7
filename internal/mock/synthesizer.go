// Package mock synthesizes deterministic OpenAI-shaped responses from
// validated requests. Nothing here performs I/O or keeps per-request state;
// a Synthesizer is built once at startup and shared by all handlers.
package mock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nulzo/openai-mock/pkg/api"
)

var ErrEmptyPool = errors.New("text pool must not be empty")

// Config is the immutable input of a Synthesizer.
type Config struct {
	CompletionPool     []string
	ChatPool           []string
	Dimensions         map[string]int
	FallbackDimensions int
}

// Synthesizer holds the three response generators.
type Synthesizer struct {
	ids            IDGenerator
	usage          UsageCalculator
	vectors        *VectorGenerator
	completionPool []string
	chatPool       []string
}

// New builds a Synthesizer. ids may be nil for the default uuid generator.
func New(cfg Config, ids IDGenerator) (*Synthesizer, error) {
	if len(cfg.CompletionPool) == 0 {
		return nil, fmt.Errorf("completion pool: %w", ErrEmptyPool)
	}
	if len(cfg.ChatPool) == 0 {
		return nil, fmt.Errorf("chat pool: %w", ErrEmptyPool)
	}
	if ids == nil {
		ids = NewIDGenerator()
	}

	return &Synthesizer{
		ids:            ids,
		vectors:        NewVectorGenerator(cfg.Dimensions, cfg.FallbackDimensions),
		completionPool: append([]string(nil), cfg.CompletionPool...),
		chatPool:       append([]string(nil), cfg.ChatPool...),
	}, nil
}

// Vectors exposes the embedding generator.
func (s *Synthesizer) Vectors() *VectorGenerator { return s.vectors }

// Usage exposes the token estimator.
func (s *Synthesizer) Usage() UsageCalculator { return s.usage }

// InternalError is returned when synthesis fails unexpectedly. Callers map
// it to a generic 500; Cause is for logs only.
type InternalError struct {
	Op    string
	Cause any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("synthesize %s: %v", e.Op, e.Cause)
}

// recoverInto turns a panic in a generator into an InternalError.
func recoverInto(err *error, op string) {
	if r := recover(); r != nil {
		*err = &InternalError{Op: op, Cause: r}
	}
}

// shape applies stop sequences and the token cap to a template and returns
// the generated text with its finish reason.
func (s *Synthesizer) shape(template string, stops []string, maxTokens int) (string, string) {
	text := template
	reason := api.FinishStop

	if cut, ok := cutAtStop(text, stops); ok {
		text = cut
	}
	if truncated, ok := s.usage.Truncate(text, maxTokens); ok {
		text = truncated
		reason = api.FinishLength
	}
	return text, reason
}

// cutAtStop truncates text before the earliest stop sequence.
func cutAtStop(text string, stops []string) (string, bool) {
	end := -1
	for _, stop := range stops {
		if stop == "" {
			continue
		}
		if i := strings.Index(text, stop); i >= 0 && (end < 0 || i < end) {
			end = i
		}
	}
	if end < 0 {
		return text, false
	}
	return text[:end], true
}
