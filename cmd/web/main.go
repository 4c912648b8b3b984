package main

import (
	"context"
	"log/slog"
	"os"

	"basegraph.app/heronames/common/id"
	"basegraph.app/heronames/common/llm"
	"basegraph.app/heronames/common/logger"
	"basegraph.app/heronames/common/otel"
	"basegraph.app/heronames/core/config"
	httprouter "basegraph.app/heronames/internal/http/router"
	"basegraph.app/heronames/internal/http/server"
	"basegraph.app/heronames/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWeb)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)
	slog.InfoContext(ctx, "heronames web starting", "env", cfg.Env, "otel", telemetry != nil)

	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	llmClient, err := llm.New(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
	}

	services := service.NewServices(service.ServicesConfig{LLM: llmClient})

	router := server.NewEngine(cfg)
	httprouter.SetupPageRoutes(router, services)

	if err := server.Run(ctx, cfg, router); err != nil {
		slog.ErrorContext(ctx, "http server error", "error", err)
	}

	if err := telemetry.Shutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "otel shutdown error", "error", err)
	}
}
