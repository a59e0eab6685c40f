package config

// Factor names used as keys in PriorityConfig.Keywords.
const (
	FactorUrgency        = "urgency"
	FactorBusinessImpact = "business_impact"
	FactorSeverity       = "severity"
	FactorCompliance     = "compliance"
	FactorDeadline       = "deadline"
)

// defaultKeywords carries the stock keyword weight tables. Each factor score
// is the maximum weight among matched keywords, so weights stay in [0,3].
var defaultKeywords = map[string]map[string]float64{
	FactorUrgency: {
		"urgent": 3, "critical failure": 3, "emergency": 3, "asap": 3,
		"immediately": 3, "blocked": 3, "deadline approaching": 3, "down": 3,
		"broken": 3, "failed": 3, "not working": 3, "crash": 3, "unavailable": 3,
		"important": 2, "priority": 2, "soon": 2, "quickly": 2, "fast": 2,
		"issue": 2, "problem": 2, "error": 2, "bug": 2,
		"help": 1, "assistance": 1, "support": 1, "question": 1,
	},
	FactorBusinessImpact: {
		"entire organization": 3, "all users": 3, "everyone": 3,
		"company-wide": 3, "organization": 3, "enterprise": 3, "all teams": 3,
		"global": 3,
		"team": 2, "department": 2, "bi team": 2, "engineering": 2,
		"data team": 2, "analytics team": 2, "multiple users": 2,
		"several people": 2,
		"few users": 1, "small group": 1, "couple of people": 1, "some users": 1,
	},
	FactorSeverity: {
		"production": 3, "live": 3, "down": 3, "broken": 3, "failed": 3,
		"crash": 3, "not working": 3, "unavailable": 3, "outage": 3,
		"disruption": 3,
		"security": 2, "compliance": 2, "audit": 2, "pii": 2, "sensitive": 2,
		"rbac": 2, "dlp": 2, "sso": 2, "authentication": 2, "credentials": 2,
		"setup": 2, "configuration": 2, "config": 2, "install": 2, "deploy": 2,
		"integration": 2, "connector": 2, "api": 2, "permissions": 2,
		"how to": 1, "how-to": 1, "tutorial": 1, "guide": 1,
		"feature request": 1, "enhancement": 1, "improvement": 1,
		"suggestion": 1, "question": 1,
	},
	FactorCompliance: {
		"audit": 3, "compliance": 3, "regulatory": 3, "sox": 3, "gdpr": 3,
		"hipaa": 3, "pii": 3, "sensitive data": 3, "confidential": 3,
		"breach": 3, "leak": 3, "exposed": 3, "security breach": 3,
		"data loss": 3,
		"rbac": 2, "dlp": 2, "sso": 2, "authentication": 2, "credentials": 2,
		"permissions": 2, "access control": 2, "authorization": 2, "privacy": 2,
		"security": 1, "best practices": 1, "governance": 1, "policy": 1,
	},
	FactorDeadline: {
		"deadline": 3, "due": 3, "today": 3, "tomorrow": 3, "urgent": 3,
		"asap": 3, "immediately": 3, "critical": 3, "emergency": 3,
		"presentation": 2, "meeting": 2, "this week": 2, "next week": 2,
		"soon": 1, "quickly": 1, "priority": 1, "important": 1, "timely": 1,
	},
}

// defaultQuerySuffixes maps a topic tag to terms appended to a search query
// for that topic.
var defaultQuerySuffixes = map[string]string{
	"API/SDK":        "API documentation SDK developer guide",
	"Product":        "product features user guide documentation",
	"How-to":         "how to tutorial step by step guide",
	"SSO":            "single sign on authentication setup configuration",
	"Best practices": "best practices recommendations guidelines",
}

// defaultSearchable is the stock allow-set of topics answered from live
// documentation search. Everything else is routed to a team.
var defaultSearchable = []string{
	"How-to", "Product", "Best practices", "API/SDK", "SSO",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Model:    "gpt-4o-mini",
		LLM: LLMConfig{
			Temperature:        0.1,
			ClassifyMaxTokens:  1000,
			SynthesisMaxTokens: 1500,
			RequestsPerMinute:  60,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Search: SearchConfig{
			BaseURL:         "https://api.tavily.com",
			MaxResults:      5,
			MinIntervalMS:   500,
			DocsDomain:      "docs.atlan.com",
			DeveloperDomain: "developer.atlan.com",
			QuerySuffixes:   copyStringMap(defaultQuerySuffixes),
		},
		Cache: CacheConfig{
			Backend: CacheMemory,
			Size:    1000,
			TTLSecs: 3600,
		},
		Routing: RoutingConfig{
			Searchable: append([]string(nil), defaultSearchable...),
		},
		Priority: PriorityConfig{
			P0Threshold: 15,
			P1Threshold: 10,
			Keywords:    copyKeywordTables(defaultKeywords),
		},
	}
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyKeywordTables(in map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(in))
	for factor, table := range in {
		inner := make(map[string]float64, len(table))
		for kw, w := range table {
			inner[kw] = w
		}
		out[factor] = inner
	}
	return out
}
