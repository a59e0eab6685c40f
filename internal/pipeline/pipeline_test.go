package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rpatodia/tickettriage/internal/answer"
	"github.com/rpatodia/tickettriage/internal/classify"
	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/priority"
	"github.com/rpatodia/tickettriage/internal/route"
	"github.com/rpatodia/tickettriage/internal/search"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

type stubClassifier struct {
	result classify.Classification
}

func (s *stubClassifier) Classify(context.Context, string, string) classify.Classification {
	return s.result
}

type stubSearcher struct {
	sources []search.Source
	err     error
	calls   int
}

func (s *stubSearcher) Search(context.Context, string, []ticket.TopicTag) ([]search.Source, error) {
	s.calls++
	return s.sources, s.err
}

type stubSynthesizer struct {
	answer string
	err    error
}

func (s *stubSynthesizer) Synthesize(context.Context, string, []search.Source) (string, error) {
	return s.answer, s.err
}

var testSources = []search.Source{
	{Title: "SSO setup", URL: "https://docs.atlan.com/sso", Snippet: "Configure SAML.", Relevance: 0.75},
	{Title: "Okta guide", URL: "https://docs.atlan.com/okta", Snippet: "Create an app.", Relevance: 0.25},
}

func newTestPipeline(c Classifier, s search.Searcher, syn Synthesizer) *Pipeline {
	cfg := config.DefaultConfig()
	return New(c, priority.NewScorer(cfg.Priority), route.NewEngine(cfg.Routing), s, syn)
}

func searchableClassification() classify.Classification {
	return classify.Classification{
		TopicTags:  []ticket.TopicTag{ticket.TopicSSO},
		Sentiment:  ticket.SentimentCurious,
		Confidence: 0.9,
	}
}

func TestProcessSearchBranch(t *testing.T) {
	searcher := &stubSearcher{sources: testSources}
	synth := &stubSynthesizer{answer: "Configure SAML under admin settings."}
	p := newTestPipeline(&stubClassifier{result: searchableClassification()}, searcher, synth)

	got, err := p.Process(context.Background(), ticket.New("SSO", "How do I set up SSO?", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProcessingMethod != MethodSearch {
		t.Errorf("method = %s", got.ProcessingMethod)
	}
	if got.FinalResponse.Answer != "Configure SAML under admin settings." {
		t.Errorf("answer = %q", got.FinalResponse.Answer)
	}
	if !got.FinalResponse.SearchUsed {
		t.Error("expected SearchUsed")
	}
	if len(got.FinalResponse.Sources) != 2 {
		t.Errorf("sources = %v", got.FinalResponse.Sources)
	}
	// Mean of 0.75 and 0.25.
	if got.FinalResponse.Confidence != 0.5 {
		t.Errorf("confidence = %v", got.FinalResponse.Confidence)
	}
	if got.FinalResponse.RoutingMessage != "" {
		t.Errorf("unexpected routing message %q", got.FinalResponse.RoutingMessage)
	}
}

func TestProcessRoutedBranch(t *testing.T) {
	classification := classify.Classification{
		TopicTags:  []ticket.TopicTag{ticket.TopicConnector, ticket.TopicLineage},
		Sentiment:  ticket.SentimentFrustrated,
		Confidence: 0.85,
	}
	searcher := &stubSearcher{sources: testSources}
	p := newTestPipeline(&stubClassifier{result: classification}, searcher, &stubSynthesizer{answer: "unused"})

	got, err := p.Process(context.Background(), ticket.New("Connector down", "The Snowflake crawler fails.", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProcessingMethod != MethodRouted {
		t.Errorf("method = %s", got.ProcessingMethod)
	}
	if searcher.calls != 0 {
		t.Error("routed tickets must not hit search")
	}
	if !strings.Contains(got.FinalResponse.RoutingMessage, "Connector") {
		t.Errorf("routing message = %q", got.FinalResponse.RoutingMessage)
	}
	if got.FinalResponse.Answer != got.FinalResponse.RoutingMessage {
		t.Error("answer should carry the routing message")
	}
	if got.FinalResponse.SearchUsed {
		t.Error("SearchUsed must be false on the routed branch")
	}
	if len(got.FinalResponse.Sources) != 0 {
		t.Errorf("sources = %v", got.FinalResponse.Sources)
	}
}

func TestProcessSearchFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("tavily unreachable")}
	p := newTestPipeline(&stubClassifier{result: searchableClassification()}, searcher, &stubSynthesizer{answer: "unused"})

	got, err := p.Process(context.Background(), ticket.New("SSO", "help", ""))
	if err != nil {
		t.Fatalf("search failure must not surface: %v", err)
	}
	if got.FinalResponse.Answer != answer.NotFound {
		t.Errorf("answer = %q", got.FinalResponse.Answer)
	}
	if got.FinalResponse.Confidence != 0 {
		t.Errorf("confidence = %v", got.FinalResponse.Confidence)
	}
	if !got.FinalResponse.SearchUsed {
		t.Error("expected SearchUsed even when search fails")
	}
}

func TestProcessZeroResults(t *testing.T) {
	p := newTestPipeline(&stubClassifier{result: searchableClassification()}, &stubSearcher{}, &stubSynthesizer{answer: "unused"})

	got, err := p.Process(context.Background(), ticket.New("SSO", "help", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalResponse.Answer != answer.NotFound {
		t.Errorf("answer = %q", got.FinalResponse.Answer)
	}
	if len(got.FinalResponse.Sources) != 0 {
		t.Errorf("sources = %v", got.FinalResponse.Sources)
	}
}

func TestProcessSynthesisFailureServesSnippets(t *testing.T) {
	searcher := &stubSearcher{sources: testSources}
	synth := &stubSynthesizer{err: errors.New("model overloaded")}
	p := newTestPipeline(&stubClassifier{result: searchableClassification()}, searcher, synth)

	got, err := p.Process(context.Background(), ticket.New("SSO", "help", ""))
	if err != nil {
		t.Fatalf("synthesis failure must not surface: %v", err)
	}
	if !strings.Contains(got.FinalResponse.Answer, "SSO setup: Configure SAML.") {
		t.Errorf("answer = %q", got.FinalResponse.Answer)
	}
	if len(got.FinalResponse.Sources) != 2 {
		t.Error("sources should still be attached")
	}
}

func TestProcessRejectsEmptyTicket(t *testing.T) {
	p := newTestPipeline(&stubClassifier{result: searchableClassification()}, &stubSearcher{}, &stubSynthesizer{})

	if _, err := p.Process(context.Background(), ticket.Ticket{Subject: "  "}); !errors.Is(err, ticket.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestProcessPriorityUsesClassifiedSentiment(t *testing.T) {
	angry := classify.Classification{
		TopicTags:  []ticket.TopicTag{ticket.TopicProduct},
		Sentiment:  ticket.SentimentAngry,
		Confidence: 0.9,
	}
	p := newTestPipeline(&stubClassifier{result: angry}, &stubSearcher{sources: testSources}, &stubSynthesizer{answer: "ok"})

	got, err := p.Process(context.Background(), ticket.New("Outage", "This is urgent and blocked, production down!", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InternalAnalysis.Priority.Tier != priority.TierP0 {
		t.Errorf("tier = %s (score %v)", got.InternalAnalysis.Priority.Tier, got.InternalAnalysis.Priority.Score)
	}
}
