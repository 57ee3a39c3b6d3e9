package cli

import (
	"strings"

	"github.com/alexanderramin/izof/internal/llm"
	"github.com/spf13/pflag"
)

// providerFlag is a pflag.Value restricted to the known providers.
type providerFlag struct {
	value llm.Provider
}

func (p *providerFlag) String() string { return string(p.value) }
func (p *providerFlag) Type() string   { return "provider" }

func (p *providerFlag) Set(s string) error {
	v, err := llm.ParseProvider(s)
	if err != nil {
		return err
	}
	p.value = v
	return nil
}

var _ pflag.Value = (*providerFlag)(nil)

// globalFlags are the persistent flags that override loaded configuration.
type globalFlags struct {
	provider providerFlag
	model    string
	endpoint string
	apiKey   string
	logCalls bool
	logFile  string
}

func (f *globalFlags) bind(fs *pflag.FlagSet, defaults llm.LLMConfig) {
	f.provider.value = defaults.Provider
	fs.Var(&f.provider, "provider", "model provider: "+strings.Join([]string{string(llm.ProviderGemini), string(llm.ProviderOllama)}, "|"))
	fs.StringVar(&f.model, "model", "", "model name (default depends on provider)")
	fs.StringVar(&f.endpoint, "endpoint", "", "provider base URL")
	fs.StringVar(&f.apiKey, "api-key", "", "Gemini API key (overrides IZOF_API_KEY)")
	fs.BoolVar(&f.logCalls, "log-calls", defaults.LogCalls, "log every model call as JSON")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
}

// apply copies explicitly set flags onto cfg.
func (f *globalFlags) apply(fs *pflag.FlagSet, cfg *llm.LLMConfig) {
	if fs.Changed("provider") {
		cfg.Provider = f.provider.value
	}
	if fs.Changed("model") {
		cfg.Model = f.model
	}
	if fs.Changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if fs.Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if fs.Changed("log-calls") {
		cfg.LogCalls = f.logCalls
	}
	if fs.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
}
