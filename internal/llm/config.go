package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by NewProvider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration. Field tags are read by the
// application config loader.
type Config struct {
	// Provider selects the backend. Empty disables the tutor unless a
	// standard API key variable is found by Discover.
	Provider string `env:"MUNHAK_LLM_PROVIDER"`

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration `env:"MUNHAK_LLM_TIMEOUT" envDefault:"30s"`
}

type AnthropicConfig struct {
	APIKey string `env:"MUNHAK_ANTHROPIC_API_KEY"`
	Model  string `env:"MUNHAK_ANTHROPIC_MODEL" envDefault:"claude-haiku"`
}

type OpenAIConfig struct {
	APIKey  string `env:"MUNHAK_OPENAI_API_KEY"`
	Model   string `env:"MUNHAK_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"MUNHAK_OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `env:"MUNHAK_GEMINI_API_KEY"`
	Model  string `env:"MUNHAK_GEMINI_MODEL" envDefault:"gemini-flash"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"MUNHAK_OPENROUTER_API_KEY"`
	Model   string `env:"MUNHAK_OPENROUTER_MODEL" envDefault:"google/gemini-2.0-flash-001"`
	BaseURL string `env:"MUNHAK_OPENROUTER_BASE_URL"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"MUNHAK_LLM_RETRY_ATTEMPTS"     envDefault:"3"`
	InitialWait time.Duration `env:"MUNHAK_LLM_RETRY_INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MUNHAK_LLM_RETRY_MAX_WAIT"     envDefault:"10s"`
	Multiplier  float64       `env:"MUNHAK_LLM_RETRY_MULTIPLIER"   envDefault:"2"`
}

// DefaultConfig returns the same defaults the env tags declare, with no
// provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Discover fills in a provider from the standard API key variables when cfg
// has none selected. Probed in order: Gemini, OpenAI, Anthropic, OpenRouter.
// Reports whether cfg ends up with a provider.
func Discover(cfg Config) (Config, bool) {
	if cfg.Provider != "" {
		return cfg, true
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}
	return cfg, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MUNHAK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("MUNHAK_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("MUNHAK_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("MUNHAK_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	case "":
		return fmt.Errorf("no LLM provider configured (set MUNHAK_LLM_PROVIDER or an API key)")
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
