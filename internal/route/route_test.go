package route

import (
	"strings"
	"testing"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

func newDefaultEngine() *Engine {
	return NewEngine(config.DefaultConfig().Routing)
}

func TestDecide(t *testing.T) {
	e := newDefaultEngine()

	cases := []struct {
		name string
		tags []ticket.TopicTag
		want Decision
	}{
		{"how-to searches", []ticket.TopicTag{ticket.TopicHowTo}, DecisionSearch},
		{"api/sdk searches", []ticket.TopicTag{ticket.TopicAPISDK}, DecisionSearch},
		{"sso searches", []ticket.TopicTag{ticket.TopicSSO}, DecisionSearch},
		{"other routes", []ticket.TopicTag{ticket.TopicOther}, DecisionRoute},
		{"connector routes", []ticket.TopicTag{ticket.TopicConnector}, DecisionRoute},
		{"lineage routes", []ticket.TopicTag{ticket.TopicLineage}, DecisionRoute},
		{"mixed tags search on any allowed", []ticket.TopicTag{ticket.TopicGlossary, ticket.TopicProduct}, DecisionSearch},
		{"all blocked tags route", []ticket.TopicTag{ticket.TopicConnector, ticket.TopicSensitiveData}, DecisionRoute},
		{"no tags route", nil, DecisionRoute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Decide(tc.tags); got != tc.want {
				t.Errorf("Decide(%v) = %s, want %s", tc.tags, got, tc.want)
			}
		})
	}
}

func TestMessageNamesPrimaryTopic(t *testing.T) {
	e := newDefaultEngine()

	msg := e.Message([]ticket.TopicTag{ticket.TopicConnector, ticket.TopicLineage})
	if !strings.Contains(msg, "'Connector'") {
		t.Errorf("message should name the primary topic: %q", msg)
	}
	if !strings.Contains(msg, "routed to the appropriate team") {
		t.Errorf("message should state routing: %q", msg)
	}
}

func TestMessageForOther(t *testing.T) {
	e := newDefaultEngine()
	msg := e.Message([]ticket.TopicTag{ticket.TopicOther})
	if !strings.Contains(msg, "'Other'") {
		t.Errorf("message should name Other: %q", msg)
	}
}

func TestMessageWithoutTagsFallsBackToOther(t *testing.T) {
	e := newDefaultEngine()
	msg := e.Message(nil)
	if !strings.Contains(msg, "'Other'") {
		t.Errorf("empty tags should fall back to Other: %q", msg)
	}
}

func TestAllowSetIsConfigurable(t *testing.T) {
	e := NewEngine(config.RoutingConfig{Searchable: []string{"Connector"}})
	if got := e.Decide([]ticket.TopicTag{ticket.TopicConnector}); got != DecisionSearch {
		t.Errorf("custom allow-set should make Connector searchable, got %s", got)
	}
	if got := e.Decide([]ticket.TopicTag{ticket.TopicHowTo}); got != DecisionRoute {
		t.Errorf("How-to should route under custom allow-set, got %s", got)
	}
}

func TestUnknownAllowSetEntriesIgnored(t *testing.T) {
	e := NewEngine(config.RoutingConfig{Searchable: []string{"Bogus", "Product"}})
	if got := e.Decide([]ticket.TopicTag{ticket.TopicProduct}); got != DecisionSearch {
		t.Errorf("valid entry should still apply, got %s", got)
	}
}
