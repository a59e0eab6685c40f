package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// providerModels maps each provider to its default classification model.
var providerModels = map[ProviderType]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderOllama:    "llama3",
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to tickettriage! Let's configure your deployment.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"openai", "anthropic", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model for classification and synthesis",
		Default: providerModels[cfg.Provider],
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	cfg.Model = model

	// 3. Documentation domains.
	docsPrompt := promptui.Prompt{
		Label:   "Product documentation domain",
		Default: cfg.Search.DocsDomain,
	}
	docsDomain, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs domain: %w", err)
	}
	cfg.Search.DocsDomain = docsDomain

	devPrompt := promptui.Prompt{
		Label:   "Developer reference domain",
		Default: cfg.Search.DeveloperDomain,
	}
	devDomain, err := devPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("developer domain: %w", err)
	}
	cfg.Search.DeveloperDomain = devDomain

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("invalid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Cache backend.
	cachePrompt := promptui.Select{
		Label: "Classification cache backend",
		Items: []string{"memory", "redis"},
	}
	_, backend, err := cachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cache backend: %w", err)
	}
	cfg.Cache.Backend = CacheBackend(backend)
	if cfg.Cache.Backend == CacheRedis {
		redisPrompt := promptui.Prompt{
			Label:   "Redis URL",
			Default: "redis://localhost:6379/0",
		}
		redisURL, err := redisPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		cfg.Cache.RedisURL = redisURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration written to %s\n", path)
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		fmt.Printf("Remember to export %s before starting the server.\n", envVar)
	}
	fmt.Println("Remember to export TAVILY_API_KEY for documentation search.")

	return cfg, nil
}
