package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	c := New("test")

	c.ObserveRequest("/v1/chat/completions", http.StatusOK, 3*time.Millisecond)
	c.ObserveRequest("/v1/chat/completions", http.StatusOK, time.Millisecond)
	c.ObserveRequest("/v1/chat/completions", http.StatusBadRequest, time.Millisecond)
	c.AddTokens("/v1/embeddings", 12, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("/v1/chat/completions", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("/v1/chat/completions", "400")))
	assert.Equal(t, 12.0, testutil.ToFloat64(c.tokens.WithLabelValues("/v1/embeddings", "prompt")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.tokens))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveRequest("/", http.StatusOK, time.Millisecond)
		c.AddTokens("/", 1, 1)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := New("openai_mock")
	c.ObserveRequest("/v1/completions", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `openai_mock_requests_total{endpoint="/v1/completions",status="200"} 1`)
}
