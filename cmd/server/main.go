package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nulzo/openai-mock/internal/config"
	"github.com/nulzo/openai-mock/internal/platform/logger"
	"github.com/nulzo/openai-mock/internal/platform/otel"
	"github.com/nulzo/openai-mock/internal/server"
	"github.com/nulzo/openai-mock/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const longDesc = `openai-mock serves deterministic, OpenAI-compatible responses for
/v1/completions, /v1/chat/completions and /v1/embeddings without calling any
upstream model.

Configuration is read from defaults, .env, config.yaml, environment variables
(SERVER_PORT, AUTH_API_KEY, ...) and flags, in increasing precedence.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "openai-mock",
		Short:         "Deterministic OpenAI API mock server",
		Long:          longDesc,
		Version:       version.Current(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.FromSettings(cfg.Log.Level, cfg.Log.Format))
	defer func() { _ = log.Sync() }()

	tracing, err := otel.New(ctx, otel.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
	}, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	srv, err := server.New(cfg, log, tracing)
	if err != nil {
		return err
	}

	log.Info("starting openai-mock",
		zap.String("version", version.Current()),
		zap.String("env", cfg.Server.Env),
		zap.Bool("cors", cfg.Server.EnableCORS),
		zap.Bool("tracing", cfg.Tracing.Enabled),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	return srv.Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
