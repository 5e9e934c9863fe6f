package setup

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/provider"
	"github.com/spf13/viper"
)

type ExecutionResult = int

const (
	Ok    ExecutionResult = 0
	NotOk ExecutionResult = 1
)

const envPrefix = "DATESTAMP"

// NewViper returns a viper instance reading DATESTAMP_* variables, plus ENV
// for the dump environment name and DATESTAMP_TZ for the time zone.
func NewViper() (*viper.Viper, error) {
	viperInstance := viper.New()

	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.AutomaticEnv()

	if err := viperInstance.BindEnv(config.KeyEnv, "ENV", envPrefix+"_ENV"); err != nil {
		return nil, err
	}

	if err := viperInstance.BindEnv(config.KeyTimezone, envPrefix+"_TZ", envPrefix+"_TIMEZONE"); err != nil {
		return nil, err
	}

	viperInstance.SetDefault(config.KeyEnv, provider.DefaultEnv)
	viperInstance.SetDefault(config.KeyLogLevel, slog.LevelInfo.String())

	return viperInstance, nil
}

type ProgramExecutor func(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error

type ExecutorBuilder func(
	viper *viper.Viper,
	console *console.Console,
) ProgramExecutor

func Run(buildExecutor ExecutorBuilder) ExecutionResult {
	start := time.Now()

	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	logger := slog.New(tint.NewHandler(
		os.Stderr,
		&tint.Options{Level: level, TimeFormat: time.TimeOnly},
	))

	defer func() {
		elapsed := time.Since(start)
		logger.Debug("cli: took", slog.Duration("elapsed", elapsed))
	}()

	viper, err := NewViper()

	if err != nil {
		logger.Error("main: could not setup configuration", slog.Any("err", err))
		return NotOk
	}

	console := &console.Console{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = buildExecutor(viper, console)(ctx, logger, level)

	if err != nil {
		logger.Error("main: failed to execute program", slog.Any("err", err))
		return NotOk
	}

	logger.Debug("main: completed", slog.Int("status_code", Ok))

	return Ok
}
