package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
pattern: "d-M-Y H:i:s"
timezone: "UTC"
charset: "iso-8859-1"
input_charset: "macintosh"
env: "STAGING"
log_level: "debug"
aliases:
  iso: "c"
  Day: "l jS"
`

func memFs(t *testing.T, path, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))

	return fs
}

func TestReadYaml(t *testing.T) {
	t.Parallel()

	fs := memFs(t, "/cfg/config.yaml", sample)

	data, err := ReadYaml(fs, "/cfg/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "d-M-Y H:i:s", data.Pattern)
	assert.Equal(t, "UTC", data.Timezone)
	assert.Equal(t, "STAGING", data.Env)
	assert.Equal(t, map[string]string{"iso": "c", "Day": "l jS"}, data.Aliases)
}

func TestReadYamlInvalid(t *testing.T) {
	t.Parallel()

	fs := memFs(t, "/cfg/config.yaml", "pattern: [unclosed")

	_, err := ReadYaml(fs, "/cfg/config.yaml")
	require.ErrorContains(t, err, "could not unmarshal")
}

func TestResolveFromFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyConfig, "/cfg/config.yaml")

	cfg, err := Resolve(v, memFs(t, "/cfg/config.yaml", sample))
	require.NoError(t, err)

	assert.Equal(t, "d-M-Y H:i:s", cfg.Pattern)
	assert.Equal(t, "iso-8859-1", cfg.Charset)
	assert.Equal(t, "macintosh", cfg.InputCharset)
	assert.Equal(t, "STAGING", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestResolveOverridesWinOverFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyConfig, "/cfg/config.yaml")
	v.Set(KeyEnv, "PRODUCTION")

	cfg, err := Resolve(v, memFs(t, "/cfg/config.yaml", sample))
	require.NoError(t, err)

	assert.Equal(t, "PRODUCTION", cfg.Env)
	assert.Equal(t, "d-M-Y H:i:s", cfg.Pattern)
}

func TestResolveExplicitMissingFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyConfig, "/missing.yaml")

	_, err := Resolve(v, afero.NewMemMapFs())
	require.Error(t, err)
}

func TestResolveMissingDefaultFileIsFine(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.SetDefault(KeyEnv, "DEVELOPMENT")

	cfg, err := Resolve(v, afero.NewMemMapFs())
	require.NoError(t, err)

	assert.Equal(t, "DEVELOPMENT", cfg.Env)
	assert.Empty(t, cfg.Pattern)
}

func TestResolveInvalidTimezone(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyTimezone, "Mars/Olympus_Mons")

	_, err := Resolve(v, afero.NewMemMapFs())
	require.ErrorContains(t, err, "invalid timezone")
}

func TestResolvePattern(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyConfig, "/cfg/config.yaml")

	cfg, err := Resolve(v, memFs(t, "/cfg/config.yaml", sample))
	require.NoError(t, err)

	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":          {"Y-m-d", "Y-m-d"},
		"empty":          {"", ""},
		"alias":          {"@iso", "c"},
		"alias any case": {"@DAY", "l jS"},
		"bare at":        {"@", "@"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := cfg.ResolvePattern(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = cfg.ResolvePattern("@nope")
	require.ErrorIs(t, err, ErrUnknownAlias)
}
