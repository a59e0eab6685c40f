// Package priority computes the deterministic ticket priority score. The
// scorer is a pure function of the ticket text and sentiment label:
// identical input always yields the identical score and tier.
package priority

import (
	"strings"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

// Tier is the priority bucket derived from the weighted factor score.
type Tier string

const (
	TierP0 Tier = "P0"
	TierP1 Tier = "P1"
	TierP2 Tier = "P2"
)

// Result holds the aggregate score and the tier it maps to.
type Result struct {
	Score float64 `json:"score"`
	Tier  Tier    `json:"tier"`
}

// Factor multipliers for the aggregate score.
const (
	urgencyWeight        = 1.5
	businessImpactWeight = 1.2
	severityWeight       = 1.3
	complianceWeight     = 1.4
	deadlineWeight       = 1.3
	sentimentWeight      = 1.1
)

// sentimentScores maps every sentiment label to its factor score. The
// lookup is total: all five taxonomy values are present.
var sentimentScores = map[ticket.Sentiment]float64{
	ticket.SentimentAngry:      3,
	ticket.SentimentFrustrated: 2,
	ticket.SentimentConfused:   1,
	ticket.SentimentCurious:    1,
	ticket.SentimentNeutral:    0,
}

// Scorer scores ticket text against configurable keyword weight tables.
type Scorer struct {
	keywords    map[string]map[string]float64
	p0Threshold float64
	p1Threshold float64
}

// NewScorer builds a Scorer from configuration. Keywords are lowercased so
// matching is case-insensitive regardless of how the tables were written.
func NewScorer(cfg config.PriorityConfig) *Scorer {
	keywords := make(map[string]map[string]float64, len(cfg.Keywords))
	for factor, table := range cfg.Keywords {
		lowered := make(map[string]float64, len(table))
		for kw, weight := range table {
			lowered[strings.ToLower(kw)] = weight
		}
		keywords[factor] = lowered
	}
	return &Scorer{
		keywords:    keywords,
		p0Threshold: cfg.P0Threshold,
		p1Threshold: cfg.P1Threshold,
	}
}

// Score computes the weighted 6-factor priority for the given ticket text
// and sentiment label.
func (s *Scorer) Score(text string, sentiment ticket.Sentiment) Result {
	lowered := strings.ToLower(text)

	urgency := s.factorScore(lowered, config.FactorUrgency)
	businessImpact := s.factorScore(lowered, config.FactorBusinessImpact)
	severity := s.factorScore(lowered, config.FactorSeverity)
	compliance := s.factorScore(lowered, config.FactorCompliance)
	deadline := s.factorScore(lowered, config.FactorDeadline)
	sentimentScore := clamp(sentimentScores[sentiment])

	score := urgency*urgencyWeight +
		businessImpact*businessImpactWeight +
		severity*severityWeight +
		compliance*complianceWeight +
		deadline*deadlineWeight +
		sentimentScore*sentimentWeight

	return Result{Score: score, Tier: s.tier(score)}
}

// factorScore returns the maximum weight among matched keywords, clamped to
// [0,3]. Taking the max rather than a sum keeps repeated mentions from
// inflating the factor.
func (s *Scorer) factorScore(loweredText, factor string) float64 {
	var best float64
	for keyword, weight := range s.keywords[factor] {
		if strings.Contains(loweredText, keyword) && weight > best {
			best = weight
		}
	}
	return clamp(best)
}

func (s *Scorer) tier(score float64) Tier {
	switch {
	case score >= s.p0Threshold:
		return TierP0
	case score >= s.p1Threshold:
		return TierP1
	default:
		return TierP2
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}
