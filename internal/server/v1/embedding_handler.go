package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/pkg/api"
)

type EmbeddingHandler struct {
	deps Deps
}

func NewEmbeddingHandler(deps Deps) *EmbeddingHandler {
	return &EmbeddingHandler{deps: deps}
}

// Create returns one deterministic vector per input.
//
// POST /v1/embeddings
func (h *EmbeddingHandler) Create(c *gin.Context) {
	var req api.EmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(h.deps.Validator, err))
		return
	}
	if err := h.deps.Validator.Embedding(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	resp, err := synthesize(c, h.deps.Tracer, "mock.embedding", req.Model, len(req.Input.Units()),
		func() (*api.EmbeddingResponse, error) { return h.deps.Synth.Embedding(&req) })
	if err != nil {
		_ = c.Error(api.InternalError(err))
		return
	}

	h.deps.Metrics.AddTokens(c.FullPath(), resp.Usage.PromptTokens, 0)
	c.JSON(http.StatusOK, resp)
}
