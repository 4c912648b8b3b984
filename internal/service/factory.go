package service

import "basegraph.app/heronames/common/llm"

type ServicesConfig struct {
	LLM llm.Client
}

type Services struct {
	llm llm.Client
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{llm: cfg.LLM}
}

func (s *Services) Generation() GenerationService {
	return NewGenerationService(s.llm)
}
