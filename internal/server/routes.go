package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/server/middleware"
	v1 "github.com/nulzo/openai-mock/internal/server/v1"
	"github.com/nulzo/openai-mock/pkg/api"
)

// route is one row of the routing table.
type route struct {
	method    string
	path      string
	protected bool
	handler   gin.HandlerFunc
}

func (s *Server) routes() []route {
	deps := v1.Deps{
		Synth:     s.synth,
		Validator: s.validator,
		Metrics:   s.metrics,
		Tracer:    s.tracing.Tracer(),
	}

	completions := v1.NewCompletionHandler(deps)
	chat := v1.NewChatHandler(deps)
	embeddings := v1.NewEmbeddingHandler(deps)
	models := v1.NewModelHandler(s.config.Models)
	health := v1.NewHealthHandler(s.started, s.config.BaseURL())

	table := []route{
		{http.MethodPost, "/v1/completions", true, completions.Create},
		{http.MethodPost, "/v1/chat/completions", true, chat.CreateCompletion},
		{http.MethodPost, "/v1/embeddings", true, embeddings.Create},
		{http.MethodGet, "/v1/models", false, models.ListModels},
		{http.MethodGet, "/v1/models/:model", false, models.GetModel},
		{http.MethodGet, "/health", false, health.Health},
		{http.MethodGet, "/", false, health.Root},
	}
	if s.metrics != nil {
		table = append(table, route{http.MethodGet, "/metrics", false, gin.WrapH(s.metrics.Handler())})
	}
	return table
}

func (s *Server) SetupRoutes() {
	protected := s.router.Group("", middleware.Auth(s.gate))

	for _, r := range s.routes() {
		if r.protected {
			protected.Handle(r.method, r.path, r.handler)
		} else {
			s.router.Handle(r.method, r.path, r.handler)
		}
	}

	s.router.NoRoute(func(c *gin.Context) {
		_ = c.Error(api.NotFoundError("Unknown request URL: " + c.Request.Method + " " + c.Request.URL.Path + ". Please check the URL for typos."))
	})
}
