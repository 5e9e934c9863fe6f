package commands

import (
	"context"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
)

func NewDumpCmd(
	ctx context.Context,
	deps runner.Deps,
) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "print a log line stamped with the current time and environment",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, deps, args, runDumpCmd())
		},
	}
}

func runDumpCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		_ []string,
		di *datestamp.Datestamp,
	) error {
		return di.Write(console.Stdout, di.Provider.Dump())
	}
}
