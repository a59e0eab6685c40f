package classify

import (
	"strings"
	"testing"

	"github.com/rpatodia/tickettriage/internal/ticket"
)

func TestParseTopicResponse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantTags []ticket.TopicTag
		wantConf float64
		wantErr  bool
	}{
		{
			name:     "plain object",
			content:  `{"topics": ["How-to", "SSO"], "confidence": 0.8, "reasoning": "setup question"}`,
			wantTags: []ticket.TopicTag{ticket.TopicHowTo, ticket.TopicSSO},
			wantConf: 0.8,
		},
		{
			name:     "fenced json",
			content:  "```json\n{\"topics\": [\"Product\"], \"confidence\": 0.7}\n```",
			wantTags: []ticket.TopicTag{ticket.TopicProduct},
			wantConf: 0.7,
		},
		{
			name:     "surrounding prose",
			content:  `Here is my classification: {"topics": ["Lineage"]} Hope that helps!`,
			wantTags: []ticket.TopicTag{ticket.TopicLineage},
			wantConf: defaultLabelConfidence,
		},
		{
			name:     "singular category field",
			content:  `{"category": "Glossary", "confidence": 0.6}`,
			wantTags: []ticket.TopicTag{ticket.TopicGlossary},
			wantConf: 0.6,
		},
		{
			name:     "unknown labels dropped",
			content:  `{"topics": ["Billing", "API/SDK"]}`,
			wantTags: []ticket.TopicTag{ticket.TopicAPISDK},
			wantConf: defaultLabelConfidence,
		},
		{
			name:     "duplicates collapsed",
			content:  `{"topics": ["Product", "Product"]}`,
			wantTags: []ticket.TopicTag{ticket.TopicProduct},
			wantConf: defaultLabelConfidence,
		},
		{
			name:     "out of range confidence replaced",
			content:  `{"topics": ["Product"], "confidence": 7.5}`,
			wantTags: []ticket.TopicTag{ticket.TopicProduct},
			wantConf: defaultLabelConfidence,
		},
		{
			name:    "no valid labels",
			content: `{"topics": ["Billing", "Shipping"]}`,
			wantErr: true,
		},
		{
			name:    "no json at all",
			content: "I cannot classify this ticket.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			content: `{"topics": ["Product"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, conf, _, err := parseTopicResponse(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got tags %v", tags)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tags) != len(tt.wantTags) {
				t.Fatalf("tags = %v, want %v", tags, tt.wantTags)
			}
			for i := range tags {
				if tags[i] != tt.wantTags[i] {
					t.Errorf("tags[%d] = %s, want %s", i, tags[i], tt.wantTags[i])
				}
			}
			if conf != tt.wantConf {
				t.Errorf("confidence = %v, want %v", conf, tt.wantConf)
			}
		})
	}
}

func TestParseSentimentResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ticket.Sentiment
	}{
		{"exact label", `{"sentiment": "Frustrated", "confidence": 0.9}`, ticket.SentimentFrustrated},
		{"lowercase label", `{"sentiment": "angry"}`, ticket.SentimentAngry},
		{"uppercase label", `{"sentiment": "CURIOUS"}`, ticket.SentimentCurious},
		{"alias concerned", `{"sentiment": "concerned"}`, ticket.SentimentConfused},
		{"alias furious", `{"sentiment": "Furious"}`, ticket.SentimentAngry},
		{"alias upset", `{"sentiment": "upset"}`, ticket.SentimentFrustrated},
		{"unknown defaults to neutral", `{"sentiment": "ecstatic"}`, ticket.SentimentNeutral},
		{"empty defaults to neutral", `{"sentiment": ""}`, ticket.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := parseSentimentResponse(tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("sentiment = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseSentimentResponseErrors(t *testing.T) {
	if _, _, err := parseSentimentResponse("no json here"); err == nil {
		t.Error("expected error for output without JSON")
	}
	if _, _, err := parseSentimentResponse(`{"sentiment":`); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := extractJSON("```json\n{\"a\": 1}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"a": 1}` {
		t.Errorf("extracted %q", got)
	}

	got, err = extractJSON(`prefix {"nested": {"b": 2}} suffix`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(got), `"nested"`) {
		t.Errorf("extracted %q", got)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Cannot   connect to\nSnowflake")
	b := Fingerprint("cannot connect to snowflake")
	if a != b {
		t.Error("fingerprints should match after normalization")
	}
	if a == Fingerprint("cannot connect to databricks") {
		t.Error("different text should not collide")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
