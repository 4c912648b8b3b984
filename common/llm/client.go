package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = "gpt-3.5-turbo-0125"

// Client performs a single chat completion against the provider.
// Implementations must be safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int      // 0 = provider default
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type client struct {
	openai openai.Client
	model  string
}

// New builds the shared provider client. The openai SDK's built-in retries are
// disabled: a failed call is final for the request that made it.
func New(cfg Config, opts ...option.RequestOption) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &client{
		openai: openai.NewClient(reqOpts...),
		model:  model,
	}, nil
}

func (c *client) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		perr := classify(err)
		slog.WarnContext(ctx, "llm completion failed",
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"kind", perr.Kind,
			"status_code", perr.StatusCode,
			"retryable", perr.Retryable(),
			"error", err)
		return "", perr
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Kind: ErrorKindEmptyResponse, Err: errors.New("no choices in response")}
	}

	slog.DebugContext(ctx, "llm completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

func (c *client) Model() string {
	return c.model
}

func Temp(t float64) *float64 {
	return &t
}
