package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
)

func NewRenderCmd(
	ctx context.Context,
	deps runner.Deps,
) *cobra.Command {
	var at string

	renderCmd := &cobra.Command{
		Use:   "render [PATTERN]",
		Short: "render the current date and time",
		Long: `render the current date and time with a PHP date() pattern.

Without PATTERN the configured default is used ("Y-m-d H:i:s" unless
overridden). "@name" expands a pattern alias from the config file. A
backslash escapes the next character, unknown characters are printed as is.`,
		Example: `  datestamp render
  datestamp render "d-M-Y H:i:s"
  datestamp render "l jS \of F Y" --tz Europe/Rome
  datestamp render Y-m-d --at 2024-01-01T00:00:00Z`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			runDeps := deps

			if at != "" {
				instant, err := parseInstant(at)
				if err != nil {
					return err
				}
				runDeps.Clock = clock.NewMock(instant)
			}

			return runner.RunCmdE(ctx, runDeps, args, runRenderCmd())
		},
	}

	renderCmd.Flags().StringVar(&at, "at", "", "render this instant (RFC 3339 or \"Y-m-d H:i:s\" local) instead of now")

	return renderCmd
}

func runRenderCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		args []string,
		di *datestamp.Datestamp,
	) error {
		rendered, err := di.Render(patternArg(args))
		if err != nil {
			return err
		}

		return di.Println(console.Stdout, rendered)
	}
}

func patternArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func parseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(time.DateTime, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("commands: invalid instant '%s', expected RFC 3339 or %s", value, time.DateTime)
	}

	return t, nil
}
