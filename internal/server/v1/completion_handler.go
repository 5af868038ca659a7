package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/pkg/api"
)

type CompletionHandler struct {
	deps Deps
}

func NewCompletionHandler(deps Deps) *CompletionHandler {
	return &CompletionHandler{deps: deps}
}

// Create answers a legacy text completion.
//
// POST /v1/completions
func (h *CompletionHandler) Create(c *gin.Context) {
	var req api.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(h.deps.Validator, err))
		return
	}
	if err := h.deps.Validator.Completion(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	resp, err := synthesize(c, h.deps.Tracer, "mock.completion", req.Model, req.ChoiceCount(),
		func() (*api.CompletionResponse, error) { return h.deps.Synth.Completion(&req) })
	if err != nil {
		_ = c.Error(api.InternalError(err))
		return
	}

	h.deps.Metrics.AddTokens(c.FullPath(), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	c.JSON(http.StatusOK, resp)
}
