package main

import (
	"context"
	"fmt"
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
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeAPI)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "heronames api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
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
	slog.InfoContext(ctx, "llm client ready", "model", llmClient.Model())

	services := service.NewServices(service.ServicesConfig{LLM: llmClient})

	router := server.NewEngine(cfg)
	httprouter.SetupAPIRoutes(router, services, httprouter.RouterConfig{
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.OTel.ServiceVersion,
	})

	if err := server.Run(ctx, cfg, router); err != nil {
		slog.ErrorContext(ctx, "http server error", "error", err)
	}

	if err := telemetry.Shutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "otel shutdown error", "error", err)
	}

	slog.InfoContext(ctx, "shutdown complete")
}

const banner = `
 _   _ _____ ____   ___  _   _    _    __  __ _____ ____
| | | | ____|  _ \ / _ \| \ | |  / \  |  \/  | ____/ ___|
| |_| |  _| | |_) | | | |  \| | / _ \ | |\/| |  _| \___ \
|  _  | |___|  _ <| |_| | |\  |/ ___ \| |  | | |___ ___) |
|_| |_|_____|_| \_\\___/|_| \_/_/   \_\_|  |_|_____|____/
`
