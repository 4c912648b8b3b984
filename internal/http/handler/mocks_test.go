package handler_test

import (
	"context"
	"sync/atomic"

	"basegraph.app/heronames/common/llm"
)

// stubLLMClient stands in for the completion provider.
type stubLLMClient struct {
	completeFn func(ctx context.Context, req llm.Request) (string, error)
	calls      atomic.Int32
}

func (s *stubLLMClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls.Add(1)
	if s.completeFn != nil {
		return s.completeFn(ctx, req)
	}
	return "", nil
}

func (s *stubLLMClient) Model() string {
	return "stub"
}
