package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/resonicon/internal/cli"
	rerrors "github.com/matzehuels/resonicon/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx, os.Args[1:])
	code := exitCode(err)
	if code != 0 && code != exitInterrupted {
		fmt.Fprintln(os.Stderr, "error:", rerrors.UserMessage(err))
	}
	os.Exit(code)
}

const (
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130 // shell convention for SIGINT
)

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	}
	switch rerrors.GetCode(err) {
	case rerrors.ErrCodeInvalidArgument, rerrors.ErrCodeInvalidConfig:
		return exitUsage
	}
	return exitFailure
}

func run(ctx context.Context, args []string) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.SetArgs(args)

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
