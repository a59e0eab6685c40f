// Package pipeline wires classification, priority scoring, routing, search
// and synthesis into the terminal ticket response.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/rpatodia/tickettriage/internal/answer"
	"github.com/rpatodia/tickettriage/internal/classify"
	"github.com/rpatodia/tickettriage/internal/priority"
	"github.com/rpatodia/tickettriage/internal/route"
	"github.com/rpatodia/tickettriage/internal/search"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

// ProcessingMethod records which terminal branch produced the response.
type ProcessingMethod string

const (
	MethodSearch ProcessingMethod = "search"
	MethodRouted ProcessingMethod = "routed"
)

// Classifier is the classification stage as consumed by the pipeline.
type Classifier interface {
	Classify(ctx context.Context, subject, body string) classify.Classification
}

// Synthesizer is the answer-generation stage as consumed by the pipeline.
type Synthesizer interface {
	Synthesize(ctx context.Context, query string, sources []search.Source) (string, error)
}

// InternalAnalysis carries the agent-facing half of the result.
type InternalAnalysis struct {
	Classification classify.Classification `json:"classification"`
	Priority       priority.Result         `json:"priority"`
}

// FinalResponse carries the customer-facing half of the result.
type FinalResponse struct {
	Answer         string          `json:"answer"`
	Sources        []search.Source `json:"sources,omitempty"`
	Confidence     float64         `json:"confidence"`
	SearchUsed     bool            `json:"search_used"`
	RoutingMessage string          `json:"routing_message,omitempty"`
}

// Result is the complete outcome for one ticket.
type Result struct {
	InternalAnalysis InternalAnalysis `json:"internal_analysis"`
	FinalResponse    FinalResponse    `json:"final_response"`
	ProcessingMethod ProcessingMethod `json:"processing_method"`
}

// Pipeline processes tickets end to end. External-call failures never
// surface as errors: every stage degrades to a well-formed response.
type Pipeline struct {
	classifier  Classifier
	scorer      *priority.Scorer
	router      *route.Engine
	searcher    search.Searcher
	synthesizer Synthesizer
}

// New creates a Pipeline from its stages.
func New(classifier Classifier, scorer *priority.Scorer, router *route.Engine, searcher search.Searcher, synthesizer Synthesizer) *Pipeline {
	return &Pipeline{
		classifier:  classifier,
		scorer:      scorer,
		router:      router,
		searcher:    searcher,
		synthesizer: synthesizer,
	}
}

// Process runs the full pipeline for one ticket. The only error it returns
// is ticket.ErrEmptyText for tickets with no usable text; everything else
// is absorbed into the response.
func (p *Pipeline) Process(ctx context.Context, t ticket.Ticket) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	classification := p.classifier.Classify(ctx, t.Subject, t.Body)
	prio := p.scorer.Score(t.Text(), classification.Sentiment)

	result := &Result{
		InternalAnalysis: InternalAnalysis{
			Classification: classification,
			Priority:       prio,
		},
	}

	if p.router.Decide(classification.TopicTags) == route.DecisionRoute {
		message := p.router.Message(classification.TopicTags)
		result.ProcessingMethod = MethodRouted
		result.FinalResponse = FinalResponse{
			Answer:         message,
			Confidence:     classification.Confidence,
			RoutingMessage: message,
		}
		return result, nil
	}

	result.ProcessingMethod = MethodSearch
	result.FinalResponse = p.answerFromSearch(ctx, t, classification.TopicTags)
	return result, nil
}

// answerFromSearch runs the search branch: documentation lookup, synthesis,
// and the degraded paths when either fails.
func (p *Pipeline) answerFromSearch(ctx context.Context, t ticket.Ticket, tags []ticket.TopicTag) FinalResponse {
	sources, err := p.searcher.Search(ctx, t.Text(), tags)
	if err != nil {
		slog.Warn("documentation search failed", "ticket_id", t.ID, "error", err)
		sources = nil
	}
	if len(sources) == 0 {
		return FinalResponse{
			Answer:     answer.NotFound,
			SearchUsed: true,
		}
	}

	text, err := p.synthesizer.Synthesize(ctx, t.Text(), sources)
	if err != nil {
		slog.Warn("answer synthesis failed, serving snippets", "ticket_id", t.ID, "error", err)
		text = answer.FromSnippets(sources)
	}

	return FinalResponse{
		Answer:     text,
		Sources:    sources,
		Confidence: search.MeanRelevance(sources),
		SearchUsed: true,
	}
}
