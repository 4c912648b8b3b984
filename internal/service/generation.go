package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"basegraph.app/heronames/common/llm"
	"basegraph.app/heronames/common/logger"
	"basegraph.app/heronames/internal/model"
	"basegraph.app/heronames/internal/prompt"
)

const (
	creativeSystemPrompt = "You are a creative assistant that generates fun superhero names for animals."
	helpfulSystemPrompt  = "You are a helpful assistant."

	temperature   = 0.6
	maxNameTokens = 100
)

type GenerationService interface {
	// Generate never returns an error: provider failures are folded into the
	// result so API callers always get an envelope.
	Generate(ctx context.Context, animal string) model.GenerationResult
	// Suggest returns the raw completion for the HTML page and propagates
	// provider failures to the caller.
	Suggest(ctx context.Context, animal string) (string, error)
}

type generationService struct {
	llm llm.Client
}

func NewGenerationService(client llm.Client) GenerationService {
	return &generationService{llm: client}
}

func (s *generationService) Generate(ctx context.Context, animal string) model.GenerationResult {
	ctx = s.withLogFields(ctx, animal)

	text, err := s.complete(ctx, llm.Request{
		SystemPrompt: creativeSystemPrompt,
		UserPrompt:   prompt.Build(animal),
		MaxTokens:    maxNameTokens,
		Temperature:  llm.Temp(temperature),
	})
	if err != nil {
		slog.WarnContext(ctx, "name generation failed", "error", err)
		return model.Failed(animal, err)
	}

	names := strings.TrimSpace(text)
	slog.InfoContext(ctx, "names generated", "names", logger.Truncate(names, 200))
	return model.Succeeded(animal, names)
}

func (s *generationService) Suggest(ctx context.Context, animal string) (string, error) {
	ctx = s.withLogFields(ctx, animal)

	text, err := s.complete(ctx, llm.Request{
		SystemPrompt: helpfulSystemPrompt,
		UserPrompt:   prompt.Build(animal),
		Temperature:  llm.Temp(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("suggesting names for %q: %w", animal, err)
	}

	return strings.TrimSpace(text), nil
}

func (s *generationService) complete(ctx context.Context, req llm.Request) (string, error) {
	sc := logger.StartSpan(ctx, "llm.complete",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", s.llm.Model()),
			attribute.Int("llm.max_tokens", req.MaxTokens),
		))
	defer sc.End()

	text, err := s.llm.Complete(sc.Context(), req)
	if err != nil {
		sc.RecordError(err)
		return "", err
	}
	return text, nil
}

func (s *generationService) withLogFields(ctx context.Context, animal string) context.Context {
	return logger.WithLogFields(ctx, logger.LogFields{
		Animal:    logger.Ptr(animal),
		Model:     logger.Ptr(s.llm.Model()),
		Component: "heronames.service.generation",
	})
}
