package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type RunE func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *datestamp.Datestamp,
) error

// Deps are the process level collaborators shared by every command.
type Deps struct {
	Logger  *slog.Logger
	Level   *slog.LevelVar
	Viper   *viper.Viper
	Console *console.Console
	Fs      afero.Fs
	Clock   clock.Clock
}

func RunCmdE(
	ctx context.Context,
	deps Deps,
	args []string,
	runE RunE,
) error {
	cfg, err := config.Resolve(deps.Viper, deps.Fs)

	if err != nil {
		return err
	}

	if err := applyLogLevel(deps.Level, cfg.LogLevel); err != nil {
		return err
	}

	deps.Logger.DebugContext(ctx, "runner: resolved config",
		slog.String("pattern", cfg.Pattern),
		slog.String("timezone", cfg.Timezone),
		slog.String("charset", cfg.Charset),
		slog.String("env", cfg.Env),
	)

	di, err := datestamp.NewDatestamp(deps.Logger, cfg, deps.Fs, deps.Clock)

	if err != nil {
		return err
	}

	return runE(ctx, deps.Console, args, di)
}

func applyLogLevel(level *slog.LevelVar, value string) error {
	if level == nil || value == "" {
		return nil
	}

	var parsed slog.Level

	if err := parsed.UnmarshalText([]byte(value)); err != nil {
		return fmt.Errorf("runner: invalid log level '%s': %w", value, err)
	}

	level.Set(parsed)

	return nil
}
