package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Disabled(t *testing.T) {
	tr, err := New(context.Background(), Config{}, zap.NewNop())
	require.NoError(t, err)

	_, span := tr.Tracer().Start(context.Background(), "mock.chat")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestNew_ExportsSpans(t *testing.T) {
	var out bytes.Buffer
	tr, err := New(context.Background(), Config{Enabled: true, ServiceName: "openai-mock-test", Writer: &out}, zap.NewNop())
	require.NoError(t, err)

	_, span := tr.Tracer().Start(context.Background(), "mock.embedding")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, tr.Shutdown(context.Background()))
	assert.Contains(t, out.String(), "mock.embedding")
	assert.Contains(t, out.String(), "openai-mock-test")
}
