package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOllama    ProviderType = "ollama"
)

// CacheBackend identifies a classification cache implementation.
type CacheBackend string

const (
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
)

// Config is the top-level triage configuration, corresponding to
// .tickettriage.yml.
type Config struct {
	Provider ProviderType   `yaml:"provider" koanf:"provider"`
	Model    string         `yaml:"model" koanf:"model"`
	LLM      LLMConfig      `yaml:"llm" koanf:"llm"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Search   SearchConfig   `yaml:"search" koanf:"search"`
	Cache    CacheConfig    `yaml:"cache" koanf:"cache"`
	Routing  RoutingConfig  `yaml:"routing" koanf:"routing"`
	Priority PriorityConfig `yaml:"priority" koanf:"priority"`
}

// LLMConfig tunes the model calls made by the classifier and synthesizer.
type LLMConfig struct {
	Temperature        float64 `yaml:"temperature" koanf:"temperature"`
	ClassifyMaxTokens  int     `yaml:"classify_max_tokens" koanf:"classify_max_tokens"`
	SynthesisMaxTokens int     `yaml:"synthesis_max_tokens" koanf:"synthesis_max_tokens"`
	RequestsPerMinute  int     `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SearchConfig holds documentation search settings. Domains and query
// suffixes are plain maps so deployments can re-target the search without
// code changes.
type SearchConfig struct {
	BaseURL         string            `yaml:"base_url" koanf:"base_url"`
	MaxResults      int               `yaml:"max_results" koanf:"max_results"`
	MinIntervalMS   int               `yaml:"min_interval_ms" koanf:"min_interval_ms"`
	DocsDomain      string            `yaml:"docs_domain" koanf:"docs_domain"`
	DeveloperDomain string            `yaml:"developer_domain" koanf:"developer_domain"`
	QuerySuffixes   map[string]string `yaml:"query_suffixes" koanf:"query_suffixes"`
}

// CacheConfig holds classification cache settings.
type CacheConfig struct {
	Backend  CacheBackend `yaml:"backend" koanf:"backend"`
	Size     int          `yaml:"size" koanf:"size"`
	RedisURL string       `yaml:"redis_url" koanf:"redis_url"`
	TTLSecs  int          `yaml:"ttl_secs" koanf:"ttl_secs"`
}

// RoutingConfig holds the allow-set of topics eligible for live search.
type RoutingConfig struct {
	Searchable []string `yaml:"searchable_topics" koanf:"searchable_topics"`
}

// PriorityConfig holds the keyword weight tables and tier thresholds for
// the priority scorer. Keywords maps factor name to keyword to weight.
type PriorityConfig struct {
	P0Threshold float64                       `yaml:"p0_threshold" koanf:"p0_threshold"`
	P1Threshold float64                       `yaml:"p1_threshold" koanf:"p1_threshold"`
	Keywords    map[string]map[string]float64 `yaml:"keywords" koanf:"keywords"`
}
