package cmd

import (
	"fmt"
	"os"

	"github.com/rpatodia/tickettriage/internal/answer"
	"github.com/rpatodia/tickettriage/internal/cache"
	"github.com/rpatodia/tickettriage/internal/classify"
	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/llm"
	"github.com/rpatodia/tickettriage/internal/pipeline"
	"github.com/rpatodia/tickettriage/internal/priority"
	"github.com/rpatodia/tickettriage/internal/route"
	"github.com/rpatodia/tickettriage/internal/search"
)

// buildPipeline assembles the full triage pipeline from configuration.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	if cfg.LLM.RequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.LLM.RequestsPerMinute)
	}

	classCache, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating classification cache: %w", err)
	}

	tavilyKey := os.Getenv("TAVILY_API_KEY")
	if tavilyKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: TAVILY_API_KEY is not set; documentation search will fail and searchable tickets will get the not-found answer.")
	}

	return pipeline.New(
		classify.New(provider, cfg.Model, classCache, cfg.LLM),
		priority.NewScorer(cfg.Priority),
		route.NewEngine(cfg.Routing),
		search.NewClient(cfg.Search, tavilyKey),
		answer.NewSynthesizer(provider, cfg.Model, cfg.LLM),
	), nil
}
