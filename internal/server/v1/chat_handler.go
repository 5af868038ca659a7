package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/pkg/api"
)

type ChatHandler struct {
	deps Deps
}

func NewChatHandler(deps Deps) *ChatHandler {
	return &ChatHandler{deps: deps}
}

// CreateCompletion answers a chat completion. stream is accepted but the
// reply is always a single JSON document.
//
// POST /v1/chat/completions
func (h *ChatHandler) CreateCompletion(c *gin.Context) {
	var req api.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(h.deps.Validator, err))
		return
	}
	if err := h.deps.Validator.Chat(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	resp, err := synthesize(c, h.deps.Tracer, "mock.chat", req.Model, req.ChoiceCount(),
		func() (*api.ChatCompletionResponse, error) { return h.deps.Synth.Chat(&req) })
	if err != nil {
		_ = c.Error(api.InternalError(err))
		return
	}

	h.deps.Metrics.AddTokens(c.FullPath(), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	c.JSON(http.StatusOK, resp)
}
