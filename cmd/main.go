package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "secid-import",
		Usage:    "Build the SECiD member import document from the survey spreadsheets",
		Version:  "0.1.0",
		Flags:    prepareFlags(),
		Action:   runner.Prepare,
		Commands: runner.register(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		logger.Fatalf("application error: %v", err)
	}
}
