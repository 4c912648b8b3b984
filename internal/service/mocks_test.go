package service_test

import (
	"context"

	"basegraph.app/heronames/common/llm"
)

type mockLLMClient struct {
	completeFn func(ctx context.Context, req llm.Request) (string, error)
	requests   []llm.Request
}

func (m *mockLLMClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.requests = append(m.requests, req)
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return "", nil
}

func (m *mockLLMClient) Model() string {
	return "test-model"
}
