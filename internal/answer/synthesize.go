// Package answer turns search results into a customer-facing reply: an LLM
// synthesis pass over the retrieved documentation, followed by sanitization
// of anything the model should not have emitted.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/llm"
	"github.com/rpatodia/tickettriage/internal/search"
)

// NotFound is returned verbatim when the documentation search produced
// nothing usable.
const NotFound = "I couldn't find current information about this topic in the documentation."

const synthesisSystemPrompt = `You are an expert support assistant specializing in summarizing and synthesizing documentation. Summarize complex documentation into clear, actionable guidance, synthesize information from multiple sources into coherent responses, and structure answers with clear sections and bullet points. Always prioritize accuracy, clarity, and actionable guidance based on the current documentation.`

const synthesisPromptTemplate = `Summarize and synthesize the current documentation to provide a comprehensive answer to the user's question.

Question: %s

Current Documentation Context:
%s

Instructions:
1. Summarize the key information from the documentation sources
2. Synthesize multiple sources into a coherent, comprehensive answer
3. Structure your response with clear sections
4. Extract specific steps, features, or configurations mentioned
5. DO NOT include any source URLs, links, or "Sources:" sections in your response - sources are provided separately
6. Highlight any important prerequisites, requirements, or limitations
7. Provide actionable guidance based on the documentation

Answer:`

// Synthesizer produces a single answer from a set of search results.
type Synthesizer struct {
	provider    llm.Provider
	model       string
	temperature float64
	maxTokens   int
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(provider llm.Provider, model string, cfg config.LLMConfig) *Synthesizer {
	return &Synthesizer{
		provider:    provider,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.SynthesisMaxTokens,
	}
}

// Synthesize asks the LLM to answer the query from the given sources. The
// returned text has already been sanitized. Callers should fall back to
// FromSnippets when it fails.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, sources []search.Source) (string, error) {
	if len(sources) == 0 {
		return NotFound, nil
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: synthesisSystemPrompt},
			{Role: llm.RoleUser, Content: fmt.Sprintf(synthesisPromptTemplate, query, sourceContext(sources))},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("answer synthesis: %w", err)
	}

	answer := Sanitize(resp.Content)
	if answer == "" {
		return "", fmt.Errorf("answer synthesis: empty response")
	}
	return answer, nil
}

// sourceContext renders the per-source blocks the synthesis prompt works
// from.
func sourceContext(sources []search.Source) string {
	var b strings.Builder
	for i, src := range sources {
		fmt.Fprintf(&b, "Source %d: %s\nRelevance Score: %.2f\nContent: %s\n\n---\n\n", i+1, src.Title, src.Relevance, src.Snippet)
	}
	return strings.TrimSuffix(b.String(), "\n\n---\n\n")
}

// FromSnippets presents the raw search results directly, used when
// synthesis fails. The customer still gets the retrieved material rather
// than a partial or empty answer.
func FromSnippets(sources []search.Source) string {
	if len(sources) == 0 {
		return NotFound
	}
	var b strings.Builder
	b.WriteString("Here is what the documentation says about this topic:\n")
	for _, src := range sources {
		fmt.Fprintf(&b, "\n- %s: %s", src.Title, src.Snippet)
	}
	return b.String()
}
