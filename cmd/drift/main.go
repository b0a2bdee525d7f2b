package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/internal/cli"
	drifterrors "github.com/matzehuels/drift/pkg/errors"
)

// Exit codes.
const (
	exitError       = 1
	exitConfig      = 2
	exitEnvironment = 3
	exitInterrupted = 130 // shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case drifterrors.Is(err, drifterrors.ErrCodeRenderUnavailable):
		return exitEnvironment
	case drifterrors.Is(err, drifterrors.ErrCodeInvalidConfiguration),
		drifterrors.Is(err, drifterrors.ErrCodeInvalidSeed),
		drifterrors.Is(err, drifterrors.ErrCodeInvalidInput):
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	default:
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
}
