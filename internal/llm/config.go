package llm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAnalyze TaskType = "analyze"
)

// Provider names a text-generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// ParseProvider validates a provider name.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderOllama:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider    Provider
	Endpoint    string // empty uses the provider default
	Model       string // empty uses the provider default
	APIKey      string
	Temperature float64
	MaxTokens   int
	LogCalls    bool
	LogFile     string
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// Gemini is the default provider; it needs an API key before use.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:    ProviderGemini,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// EffectiveModel returns the configured model or the provider default.
func (c LLMConfig) EffectiveModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderOllama:
		return "llama3.2"
	default:
		return "gemini-1.5-flash"
	}
}

// EffectiveEndpoint returns the configured endpoint or the provider default.
// An empty result for Gemini means the SDK's own base URL.
func (c LLMConfig) EffectiveEndpoint() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	if c.Provider == ProviderOllama {
		return "http://localhost:11434"
	}
	return ""
}

// RequiresCredential reports whether the provider needs an API key.
func (c LLMConfig) RequiresCredential() bool {
	return c.Provider == ProviderGemini
}

// ResolveCredential returns override when it is non-blank, otherwise the
// configured key.
func (c LLMConfig) ResolveCredential(override string) string {
	if strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override)
	}
	return strings.TrimSpace(c.APIKey)
}

// LoadConfig builds the configuration from, in increasing precedence:
// defaults, the YAML config file, a .env file in the working directory,
// and process environment variables.
func LoadConfig() (LLMConfig, error) {
	path, explicit := os.Getenv("IZOF_CONFIG"), true
	if path == "" {
		explicit = false
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".izof", "config.yaml")
		}
	}
	envFile := os.Getenv("IZOF_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	return loadConfig(path, explicit, envFile)
}

func loadConfig(configPath string, explicit bool, envFile string) (LLMConfig, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := applyConfigFile(&cfg, configPath, explicit); err != nil {
			return cfg, err
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			vals, err := godotenv.Read(envFile)
			if err != nil {
				return cfg, fmt.Errorf("reading %s: %w", envFile, err)
			}
			dotenv = vals
		}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *LLMConfig, lookup func(string) string) error {
	if v := lookup("IZOF_LLM_PROVIDER"); v != "" {
		p, err := ParseProvider(v)
		if err != nil {
			return err
		}
		cfg.Provider = p
	}
	if v := lookup("IZOF_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := lookup("IZOF_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := lookup("IZOF_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := lookup("IZOF_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := lookup("IZOF_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := lookup("IZOF_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	for _, key := range []string{"IZOF_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := lookup(key); v != "" {
			cfg.APIKey = v
			break
		}
	}
	return nil
}
