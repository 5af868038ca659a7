package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/config"
	"github.com/nulzo/openai-mock/pkg/api"
)

type ModelHandler struct {
	models []api.Model
}

func NewModelHandler(models []config.ModelConfig) *ModelHandler {
	list := make([]api.Model, len(models))
	for i, m := range models {
		list[i] = api.Model{ID: m.ID, Object: api.ObjectModel, Created: m.Created, OwnedBy: m.OwnedBy}
	}
	return &ModelHandler{models: list}
}

// ListModels returns the configured model list.
//
// GET /v1/models
func (h *ModelHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, api.ModelList{Object: api.ObjectList, Data: h.models})
}

// GetModel returns a single configured model.
//
// GET /v1/models/:model
func (h *ModelHandler) GetModel(c *gin.Context) {
	id := c.Param("model")
	for _, m := range h.models {
		if strings.EqualFold(m.ID, id) {
			c.JSON(http.StatusOK, m)
			return
		}
	}

	_ = c.Error(api.NewError(http.StatusNotFound, api.TypeInvalidRequest,
		fmt.Sprintf("The model '%s' does not exist", id),
		api.WithParam("model"), api.WithCode("model_not_found")))
}
