package commands

import (
	"context"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/lucax88x/datestamp/internal/provider"
	"github.com/spf13/cobra"
)

func NewPingCmd(
	ctx context.Context,
	deps runner.Deps,
) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "check that datestamp answers",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, deps, args, runPingCmd(nil))
		},
	}
}

// runPingCmd answers with pinger, or with the container's provider when nil.
func runPingCmd(pinger provider.Pinger) runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		_ []string,
		di *datestamp.Datestamp,
	) error {
		if pinger == nil {
			pinger = di.Provider
		}

		return di.Println(console.Stdout, pinger.Ping())
	}
}
