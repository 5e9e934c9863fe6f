package setup

import (
	"context"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/commands"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func NewCliExecutor(viper *viper.Viper, console *console.Console) ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error {
		rootCmd := commands.NewRootCmd(ctx, runner.Deps{
			Logger:  logger,
			Level:   level,
			Viper:   viper,
			Console: console,
			Fs:      afero.NewOsFs(),
			Clock:   clock.NewSystemClock(),
		})

		return rootCmd.ExecuteContext(ctx)
	}
}
