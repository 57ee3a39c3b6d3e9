package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/izof/internal/app"
	"github.com/alexanderramin/izof/internal/intelligence"
	"github.com/alexanderramin/izof/internal/llm"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wire builds the logger and the session controller from the final
// configuration. Preset fields are left alone.
func (a *App) wire(tui bool) error {
	if a.Logger == nil {
		logger, err := newLogger(a.Config, tui)
		if err != nil {
			return err
		}
		a.Logger = logger
		a.cleanup = append(a.cleanup, func() { _ = logger.Sync() })
	}
	if a.Analysis == nil {
		var observer llm.Observer = llm.NoopObserver{}
		if a.Config.LogCalls {
			observer = llm.NewLogObserver(a.Logger)
		}
		factory := a.Factory
		if factory == nil {
			factory = llm.NewFactory(a.Config, observer)
		}
		a.Analysis = intelligence.NewAnalysisService(a.Config, factory)
	}
	if a.Session == nil {
		a.Session = app.NewSessionController(a.Analysis, app.WithLogger(a.Logger))
	}
	return nil
}

// Close flushes the logger. It is safe to call more than once.
func (a *App) Close() {
	for _, fn := range a.cleanup {
		fn()
	}
	a.cleanup = nil
}

// newLogger returns a no-op logger unless call logging is on. The shell
// owns the terminal, so it logs to a file even when none is configured.
func newLogger(cfg llm.LLMConfig, tui bool) (*zap.Logger, error) {
	if !cfg.LogCalls {
		return zap.NewNop(), nil
	}

	path := cfg.LogFile
	if path == "" && tui {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".izof", "izof.log")
	}
	if path == "" {
		path = "stderr"
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
