package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/auth"
	"github.com/nulzo/openai-mock/internal/config"
	"github.com/nulzo/openai-mock/internal/mock"
	"github.com/nulzo/openai-mock/internal/platform/metrics"
	"github.com/nulzo/openai-mock/internal/platform/otel"
	"github.com/nulzo/openai-mock/internal/server/middleware"
	"github.com/nulzo/openai-mock/internal/validation"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router    *gin.Engine
	config    *config.Config
	logger    *zap.Logger
	tracing   *otel.Tracing
	synth     *mock.Synthesizer
	validator *validation.Validator
	gate      *auth.Gate
	metrics   *metrics.Collector
	started   time.Time
}

// New wires the engine. tracing may be nil, in which case spans are not
// recorded.
func New(cfg *config.Config, logger *zap.Logger, tracing *otel.Tracing) (*Server, error) {
	switch cfg.Server.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if tracing == nil {
		var err error
		if tracing, err = otel.New(context.Background(), otel.Config{}, logger); err != nil {
			return nil, err
		}
	}

	synth, err := mock.New(mock.Config{
		CompletionPool:     cfg.Pools.Completion,
		ChatPool:           cfg.Pools.Chat,
		Dimensions:         cfg.Embeddings.Dimensions,
		FallbackDimensions: cfg.Embeddings.FallbackDimensions,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("build synthesizer: %w", err)
	}

	s := &Server{
		router:    gin.New(),
		config:    cfg,
		logger:    logger,
		tracing:   tracing,
		synth:     synth,
		validator: validation.New(),
		gate:      auth.NewGate(cfg.Auth.APIKey),
		started:   time.Now(),
	}
	if cfg.Metrics.Enabled {
		s.metrics = metrics.New(cfg.Metrics.Namespace)
	}

	s.setupMiddleware()
	s.SetupRoutes()
	return s, nil
}

// setupMiddleware installs the global chain. Metrics sit outside recovery so
// panics are still counted as 500s.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Metrics(s.metrics))
	s.router.Use(ginzap.CustomRecoveryWithZap(s.logger, true, middleware.Recovered))
	s.router.Use(middleware.RequestID())

	if s.config.Tracing.Enabled {
		s.router.Use(otelgin.Middleware(s.config.Tracing.ServiceName,
			otelgin.WithTracerProvider(s.tracing.Provider())))
	}
	if s.config.Server.EnableLogging {
		s.router.Use(middleware.Logger(s.logger))
	}
	if s.config.Server.EnableCORS {
		s.router.Use(middleware.CORS())
	}

	s.router.Use(middleware.ErrorHandler(s.logger))
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.BindAddress())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.BindAddress(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	timeout := s.config.Server.RequestTimeout
	srv := &http.Server{
		Handler:           http.TimeoutHandler(s.router, timeout, timeoutBody),
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout + time.Second,
		IdleTimeout:       2 * timeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("OpenAI mock server listening",
			zap.String("address", ln.Addr().String()),
			zap.String("base_url", s.config.BaseURL()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("initiating graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	if err := s.tracing.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("tracer shutdown failed", zap.Error(err))
	}
	return nil
}

// timeoutBody is what http.TimeoutHandler writes when a request overruns.
const timeoutBody = `{"error":{"message":"Request timed out.","type":"server_error","param":null,"code":"timeout"}}`
