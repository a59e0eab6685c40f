// Package route decides whether a classified ticket is answered from live
// documentation search or handed to a human team.
package route

import (
	"fmt"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

// Decision is the outcome of the routing check.
type Decision string

const (
	// DecisionSearch answers the ticket from live documentation search.
	DecisionSearch Decision = "search"
	// DecisionRoute hands the ticket to the appropriate team.
	DecisionRoute Decision = "route"
)

// Engine applies the allow-set rule: a ticket is searchable only when at
// least one of its topic tags is in the configured allow-set.
type Engine struct {
	searchable map[ticket.TopicTag]bool
}

// NewEngine builds an Engine from the configured allow-set.
func NewEngine(cfg config.RoutingConfig) *Engine {
	searchable := make(map[ticket.TopicTag]bool, len(cfg.Searchable))
	for _, raw := range cfg.Searchable {
		if tag, ok := ticket.ParseTopic(raw); ok {
			searchable[tag] = true
		}
	}
	return &Engine{searchable: searchable}
}

// Decide returns DecisionSearch when the tags intersect the allow-set,
// DecisionRoute otherwise.
func (e *Engine) Decide(tags []ticket.TopicTag) Decision {
	for _, tag := range tags {
		if e.searchable[tag] {
			return DecisionSearch
		}
	}
	return DecisionRoute
}

// Message returns the templated routing message naming the ticket's primary
// topic tag.
func (e *Engine) Message(tags []ticket.TopicTag) string {
	primary := ticket.TopicOther
	if len(tags) > 0 {
		primary = tags[0]
	}
	if primary == ticket.TopicOther {
		return "This ticket has been classified as 'Other' and routed to the appropriate team."
	}
	return fmt.Sprintf("This ticket has been classified as a '%s' issue and routed to the appropriate team.", primary)
}
