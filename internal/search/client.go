// Package search queries the documentation search service and shapes its
// results into sources for answer synthesis.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

// snippetMaxBytes bounds the snippet carried on each source.
const snippetMaxBytes = 200

// Source is one retrieved documentation reference.
type Source struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
}

// Searcher is the interface consumed by the pipeline.
type Searcher interface {
	Search(ctx context.Context, query string, tags []ticket.TopicTag) ([]Source, error)
}

// Client calls a Tavily-compatible search API scoped to the configured
// documentation domains.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	docsDomain string
	devDomain  string
	suffixes   map[ticket.TopicTag]string
	httpClient *http.Client
	pacer      *pacer
}

// NewClient creates a search client from configuration.
func NewClient(cfg config.SearchConfig, apiKey string) *Client {
	suffixes := make(map[ticket.TopicTag]string, len(cfg.QuerySuffixes))
	for raw, suffix := range cfg.QuerySuffixes {
		if tag, ok := ticket.ParseTopic(raw); ok {
			suffixes[tag] = suffix
		}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     apiKey,
		maxResults: cfg.MaxResults,
		docsDomain: cfg.DocsDomain,
		devDomain:  cfg.DeveloperDomain,
		suffixes:   suffixes,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		pacer:      newPacer(time.Duration(cfg.MinIntervalMS) * time.Millisecond),
	}
}

// Domain returns the documentation domain targeted for the given tags:
// the developer reference for API/SDK tickets, the product docs otherwise.
func (c *Client) Domain(tags []ticket.TopicTag) string {
	for _, tag := range tags {
		if tag == ticket.TopicAPISDK {
			return c.devDomain
		}
	}
	return c.docsDomain
}

// EnhanceQuery appends the per-topic suffix for the first tag that has one.
func (c *Client) EnhanceQuery(query string, tags []ticket.TopicTag) string {
	for _, tag := range tags {
		if suffix, ok := c.suffixes[tag]; ok && suffix != "" {
			return query + " " + suffix
		}
	}
	return query
}

type searchRequest struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	MaxResults        int      `json:"max_results"`
	IncludeDomains    []string `json:"include_domains"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Search runs an enhanced, domain-scoped query against the search service.
// Consecutive calls are separated by the configured minimum interval to
// respect the service's rate limits. The returned slice may be empty.
func (c *Client) Search(ctx context.Context, query string, tags []ticket.TopicTag) ([]Source, error) {
	if err := c.pacer.wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(searchRequest{
		Query:             c.EnhanceQuery(query, tags),
		SearchDepth:       "advanced",
		IncludeAnswer:     true,
		IncludeRawContent: true,
		MaxResults:        c.maxResults,
		IncludeDomains:    []string{c.Domain(tags)},
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp searchResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling search response: %w", err)
	}

	// One Source per result, deduplicated by URL.
	seen := make(map[string]bool, len(resp.Results))
	sources := make([]Source, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.URL == "" || seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		sources = append(sources, Source{
			Title:     r.Title,
			URL:       r.URL,
			Snippet:   truncate(r.Content, snippetMaxBytes),
			Relevance: clampRelevance(r.Score),
		})
		if len(sources) >= c.maxResults {
			break
		}
	}
	return sources, nil
}

// MeanRelevance is the arithmetic mean of the source relevance scores,
// used as the response confidence. Zero for no sources.
func MeanRelevance(sources []Source) float64 {
	if len(sources) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sources {
		sum += s.Relevance
	}
	mean := sum / float64(len(sources))
	if mean > 1 {
		mean = 1
	}
	return mean
}

func clampRelevance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// truncate shortens s to maxBytes without splitting UTF-8 runes.
func truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
