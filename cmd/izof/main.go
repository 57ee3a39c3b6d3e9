package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/izof/internal/cli"
	"github.com/alexanderramin/izof/internal/llm"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{Config: llmCfg}

	// Detect interactive terminal for the shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx, cli.NewRootCmd(app), app)
}
