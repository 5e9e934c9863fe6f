package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultStreamWorkers = 8

type streamResult struct {
	pattern string
	encoded []byte
	err     error
}

func NewStreamCmd(
	ctx context.Context,
	deps runner.Deps,
) *cobra.Command {
	workers := defaultStreamWorkers

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "render every pattern read from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			if workers <= 0 {
				return fmt.Errorf("stream: workers must be greater than zero, got %d", workers)
			}

			return runner.RunCmdE(ctx, deps, args, runStreamCmd(workers))
		},
	}

	streamCmd.Flags().IntVar(&workers, "workers", defaultStreamWorkers, "patterns rendered in parallel")

	return streamCmd
}

// runStreamCmd renders up to workers lines at a time and prints them in input
// order. Lines that fail to resolve or encode are logged and skipped, only
// read and write errors stop the stream.
func runStreamCmd(workers int) runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *datestamp.Datestamp,
	) error {
		lines := make(chan string)
		pending := make(chan chan streamResult, workers)

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return di.Stream.Listen(gctx, console.Stdin, lines)
		})

		g.Go(func() error {
			defer close(pending)

			for line := range lines {
				result := make(chan streamResult, 1)

				select {
				case pending <- result:
				case <-gctx.Done():
					return gctx.Err()
				}

				go func() {
					result <- renderLine(di, line)
				}()
			}

			return nil
		})

		g.Go(func() error {
			for result := range pending {
				r := <-result

				if r.err != nil {
					di.Logger.WarnContext(gctx, "stream: skipping pattern",
						slog.String("pattern", r.pattern),
						slog.Any("error", r.err))
					continue
				}

				if err := di.WriteEncoded(console.Stdout, r.encoded); err != nil {
					return err
				}
			}

			return nil
		})

		err := g.Wait()

		if err != nil && ctx.Err() != nil {
			di.Logger.InfoContext(ctx, "stream: received shutdown signal")
			return nil
		}

		return err
	}
}

func renderLine(di *datestamp.Datestamp, line string) streamResult {
	rendered, err := di.Render(line)
	if err != nil {
		return streamResult{pattern: line, err: err}
	}

	encoded, err := di.Encode(rendered + "\n")

	return streamResult{pattern: line, encoded: encoded, err: err}
}
