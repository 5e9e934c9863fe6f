package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type watchOptions struct {
	interval time.Duration
	count    int
	pidFile  string
}

func NewWatchCmd(
	ctx context.Context,
	deps runner.Deps,
) *cobra.Command {
	opts := watchOptions{}

	watchCmd := &cobra.Command{
		Use:   "watch [PATTERN]",
		Short: "print the current date and time on every tick",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if opts.interval <= 0 {
				return fmt.Errorf("watch: interval must be greater than zero, got %s", opts.interval)
			}
			if opts.count < 0 {
				return fmt.Errorf("watch: count must not be negative, got %d", opts.count)
			}

			return runner.RunCmdE(ctx, deps, args, runWatchCmd(opts))
		},
	}

	watchCmd.Flags().DurationVar(&opts.interval, "interval", time.Second, "time between two renders")
	watchCmd.Flags().IntVar(&opts.count, "count", 0, "stop after this many renders (0 runs until interrupted)")
	watchCmd.Flags().StringVar(&opts.pidFile, "pid-file", "", "write the process id here while watching")

	return watchCmd
}

func runWatchCmd(opts watchOptions) runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		args []string,
		di *datestamp.Datestamp,
	) error {
		pattern, err := di.Config.ResolvePattern(patternArg(args))
		if err != nil {
			return err
		}

		if opts.pidFile != "" {
			if err := runner.CreatePidFile(di.Fs, opts.pidFile); err != nil {
				return err
			}

			defer func() {
				if err := runner.RemovePidFile(di.Fs, opts.pidFile); err != nil {
					di.Logger.ErrorContext(ctx, "watch: could not remove pid file", slog.Any("error", err))
				}
			}()
		}

		di.Logger.DebugContext(ctx, "watch: starting",
			slog.String("pattern", pattern),
			slog.Duration("interval", opts.interval),
			slog.Int("count", opts.count))

		ticks := make(chan string)
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			defer close(ticks)
			return tick(gctx, di, pattern, opts, ticks)
		})

		g.Go(func() error {
			for rendered := range ticks {
				if err := di.Println(console.Stdout, rendered); err != nil {
					return err
				}
			}
			return nil
		})

		err = g.Wait()

		if err != nil && ctx.Err() != nil {
			di.Logger.InfoContext(ctx, "watch: received shutdown signal")
			return nil
		}

		return err
	}
}

func tick(
	ctx context.Context,
	di *datestamp.Datestamp,
	pattern string,
	opts watchOptions,
	out chan<- string,
) error {
	ticker := di.Clock.Ticker(opts.interval)
	defer ticker.Stop()

	for rendered := 0; opts.count == 0 || rendered < opts.count; rendered++ {
		if rendered > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		select {
		case out <- di.Renderer.Render(pattern):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
