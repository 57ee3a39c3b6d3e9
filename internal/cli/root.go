package cli

import (
	"context"

	"github.com/alexanderramin/izof/internal/app"
	"github.com/alexanderramin/izof/internal/intelligence"
	"github.com/alexanderramin/izof/internal/llm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the configuration and use cases shared by CLI commands.
type App struct {
	Config llm.LLMConfig

	// Session is the analysis controller. When nil it is built from Config
	// after flags are parsed.
	Session app.SessionUseCase

	// Analysis is the model-facing service behind Session. When nil it is
	// built from Config and Factory.
	Analysis intelligence.AnalysisService

	// Factory overrides how model clients are created. Nil selects the
	// configured provider.
	Factory llm.Factory

	// Logger receives run lifecycle and model call logs. Nil builds one
	// from Config.
	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal. The root command
	// opens the shell when it returns true.
	IsInteractive func() bool

	cleanup []func()
}

const rootLong = `IZOF(Individual Zones of Optimal Functioning) 이론을 바탕으로 멘탈 상태를
분석하고 맞춤형 훈련법을 제안합니다.

입력은 한 줄에 하나씩 "항목 필요점수 현재점수" 형식입니다. '#'으로 시작하는
줄과 빈 줄은 무시됩니다.

  드라이버정확도 8 6
  퍼팅자신감 9 7

터미널에서 실행하면 대화형 셸이 열리고, 파이프로 입력을 넘기면 바로 분석합니다.`

// NewRootCmd creates the top-level "izof" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "izof",
		Short:         "IZOF mental-state analyzer",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd.Flags(), &a.Config)
			return a.wire(cmd.Name() == "shell" || (cmd.Parent() == nil && a.interactive()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive() {
				return runShell(cmd, a)
			}
			return runAnalyze(cmd, a, analyzeOptions{file: "-", width: 80})
		},
	}

	flags.bind(root.PersistentFlags(), a.Config)

	root.AddCommand(
		newAnalyzeCmd(a),
		newShellCmd(a),
		newPromptCmd(),
		newExampleCmd(),
		newCheckCmd(a),
	)

	return root
}

// Execute runs root and flushes the App's logger afterwards, whether the
// command succeeded or not.
func Execute(ctx context.Context, root *cobra.Command, a *App) error {
	defer a.Close()
	return root.ExecuteContext(ctx)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
