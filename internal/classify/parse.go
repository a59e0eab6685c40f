package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rpatodia/tickettriage/internal/ticket"
)

// defaultLabelConfidence is assumed when the model omits a confidence.
const defaultLabelConfidence = 0.9

// sentimentAliases maps near-miss labels the model tends to produce onto
// the fixed taxonomy.
var sentimentAliases = map[string]ticket.Sentiment{
	"concerned": ticket.SentimentConfused,
	"worried":   ticket.SentimentConfused,
	"annoyed":   ticket.SentimentFrustrated,
	"upset":     ticket.SentimentFrustrated,
	"irritated": ticket.SentimentFrustrated,
	"hostile":   ticket.SentimentAngry,
	"furious":   ticket.SentimentAngry,
}

type topicPayload struct {
	Topics     []string `json:"topics"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

type sentimentPayload struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// parseTopicResponse extracts the topic tags from the model output. Unknown
// labels are dropped; an output with no valid label at all is an error so
// the caller can fall back.
func parseTopicResponse(content string) (tags []ticket.TopicTag, confidence float64, reasoning string, err error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, 0, "", err
	}

	var payload topicPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, 0, "", fmt.Errorf("invalid topic JSON: %w", err)
	}

	labels := payload.Topics
	if len(labels) == 0 && payload.Category != "" {
		labels = []string{payload.Category}
	}

	seen := make(map[ticket.TopicTag]bool)
	for _, label := range labels {
		if tag, ok := ticket.ParseTopic(strings.TrimSpace(label)); ok && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, 0, "", fmt.Errorf("no valid topic in %q", labels)
	}

	confidence = payload.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = defaultLabelConfidence
	}
	return tags, confidence, payload.Reasoning, nil
}

// parseSentimentResponse extracts the sentiment label, mapping aliases onto
// the taxonomy and defaulting unknown labels to Neutral.
func parseSentimentResponse(content string) (ticket.Sentiment, float64, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return "", 0, err
	}

	var payload sentimentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", 0, fmt.Errorf("invalid sentiment JSON: %w", err)
	}

	label := strings.TrimSpace(payload.Sentiment)
	sentiment, ok := ticket.ParseSentiment(capitalize(label))
	if !ok {
		if alias, found := sentimentAliases[strings.ToLower(label)]; found {
			sentiment = alias
		} else {
			sentiment = ticket.SentimentNeutral
		}
	}

	confidence := payload.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = defaultLabelConfidence
	}
	return sentiment, confidence, nil
}

// extractJSON pulls the first JSON object out of model output that may be
// wrapped in markdown code fences or surrounding prose.
func extractJSON(content string) ([]byte, error) {
	s := strings.TrimSpace(content)

	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}
	return []byte(s[start : end+1]), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
