package runner

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"testing"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidFileLifecycle(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	require.NoError(t, CreatePidFile(fs, "/run/datestamp.pid"))

	content, err := afero.ReadFile(fs, "/run/datestamp.pid")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(content))

	require.NoError(t, RemovePidFile(fs, "/run/datestamp.pid"))

	exists, err := afero.Exists(fs, "/run/datestamp.pid")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPidFileRefusesLiveProcess(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pid", []byte(strconv.Itoa(os.Getpid())), 0o644))

	err := CreatePidFile(fs, "/pid")
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestPidFileRejectsGarbage(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pid", []byte("not a pid"), 0o644))

	err := CreatePidFile(fs, "/pid")
	require.ErrorContains(t, err, "could not parse pid")
}

func TestRemoveMissingPidFile(t *testing.T) {
	t.Parallel()

	require.Error(t, RemovePidFile(afero.NewMemMapFs(), "/missing"))
}

func TestApplyLogLevel(t *testing.T) {
	t.Parallel()

	level := new(slog.LevelVar)

	require.NoError(t, applyLogLevel(level, "debug"))
	assert.Equal(t, slog.LevelDebug, level.Level())

	require.NoError(t, applyLogLevel(level, ""))
	assert.Equal(t, slog.LevelDebug, level.Level())

	require.Error(t, applyLogLevel(level, "chatty"))
	require.NoError(t, applyLogLevel(nil, "warn"))
}

func TestRunCmdEBuildsContainer(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("env", "TEST")
	v.Set("log_level", "warn")

	level := new(slog.LevelVar)
	deps := Deps{
		Logger:  slog.New(slog.DiscardHandler),
		Level:   level,
		Viper:   v,
		Console: &console.Console{},
		Fs:      afero.NewMemMapFs(),
	}

	called := false
	err := RunCmdE(context.Background(), deps, []string{"x"}, func(
		_ context.Context,
		_ *console.Console,
		args []string,
		di *datestamp.Datestamp,
	) error {
		called = true
		assert.Equal(t, []string{"x"}, args)
		assert.Equal(t, "TEST", di.Config.Env)
		assert.NotNil(t, di.Clock)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, slog.LevelWarn, level.Level())
}
