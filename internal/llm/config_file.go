package llm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors LLMConfig in the YAML config file. Pointer fields
// distinguish "absent" from a zero value.
type fileConfig struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	Endpoint    string   `yaml:"endpoint"`
	APIKey      string   `yaml:"api_key"`
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
	LogCalls    *bool    `yaml:"log_calls"`
	LogFile     string   `yaml:"log_file"`
}

// applyConfigFile overlays the YAML file at path onto cfg. A missing file
// is only an error when the path was given explicitly.
func applyConfigFile(cfg *LLMConfig, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.Provider != "" {
		p, err := ParseProvider(fc.Provider)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Provider = p
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if fc.APIKey != "" {
		cfg.APIKey = fc.APIKey
	}
	if fc.Temperature != nil {
		cfg.Temperature = *fc.Temperature
	}
	if fc.MaxTokens != nil && *fc.MaxTokens > 0 {
		cfg.MaxTokens = *fc.MaxTokens
	}
	if fc.LogCalls != nil {
		cfg.LogCalls = *fc.LogCalls
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	return nil
}
