// Package classify derives topic tags and a sentiment label from ticket
// text via the LLM provider, backed by a bounded fingerprint cache.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rpatodia/tickettriage/internal/cache"
	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/llm"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

// fallbackConfidence is reported when classification fails and the fixed
// fallback is served instead.
const fallbackConfidence = 0.3

// Classification is the typed result of topic and sentiment analysis.
type Classification struct {
	TopicTags  []ticket.TopicTag `json:"topic_tags"`
	Sentiment  ticket.Sentiment  `json:"sentiment"`
	Confidence float64           `json:"confidence"`
	Reasoning  string            `json:"reasoning"`
}

// Fallback is the fixed classification served when the LLM call fails or
// its output cannot be parsed. It is never cached.
func Fallback() Classification {
	return Classification{
		TopicTags:  []ticket.TopicTag{ticket.TopicProduct},
		Sentiment:  ticket.SentimentNeutral,
		Confidence: fallbackConfidence,
		Reasoning:  "fallback",
	}
}

// Classifier issues topic and sentiment requests against the LLM provider.
type Classifier struct {
	provider    llm.Provider
	model       string
	cache       cache.Cache
	temperature float64
	maxTokens   int
}

// New creates a Classifier.
func New(provider llm.Provider, model string, c cache.Cache, cfg config.LLMConfig) *Classifier {
	return &Classifier{
		provider:    provider,
		model:       model,
		cache:       c,
		temperature: cfg.Temperature,
		maxTokens:   cfg.ClassifyMaxTokens,
	}
}

// Classify returns the classification for the given ticket text, serving
// from cache when the normalized text has been seen before. It never fails:
// any provider or parse error yields the fixed fallback.
func (c *Classifier) Classify(ctx context.Context, subject, body string) Classification {
	fingerprint := Fingerprint(subject + "\n" + body)

	raw, err := c.cache.GetOrCompute(ctx, fingerprint, func(ctx context.Context) ([]byte, error) {
		result, err := c.classify(ctx, subject, body)
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	})
	if err != nil {
		slog.Warn("classification failed, serving fallback", "error", err)
		return Fallback()
	}

	var result Classification
	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Warn("corrupt cached classification, serving fallback", "error", err)
		return Fallback()
	}
	return result
}

// classify performs the two LLM calls on a cache miss.
func (c *Classifier) classify(ctx context.Context, subject, body string) (Classification, error) {
	topicResp, err := c.complete(ctx, topicPrompt(subject, body))
	if err != nil {
		return Classification{}, fmt.Errorf("topic classification: %w", err)
	}
	topics, topicConfidence, reasoning, err := parseTopicResponse(topicResp)
	if err != nil {
		return Classification{}, fmt.Errorf("parsing topic response: %w", err)
	}

	sentimentResp, err := c.complete(ctx, sentimentPrompt(subject, body))
	if err != nil {
		return Classification{}, fmt.Errorf("sentiment classification: %w", err)
	}
	sentiment, sentimentConfidence, err := parseSentimentResponse(sentimentResp)
	if err != nil {
		return Classification{}, fmt.Errorf("parsing sentiment response: %w", err)
	}

	confidence := topicConfidence
	if sentimentConfidence < confidence {
		confidence = sentimentConfidence
	}

	return Classification{
		TopicTags:  topics,
		Sentiment:  sentiment,
		Confidence: confidence,
		Reasoning:  reasoning,
	}, nil
}

func (c *Classifier) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model: c.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: classifierSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		JSONMode:    true,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
