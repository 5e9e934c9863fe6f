package setup

import (
	"testing"

	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViperDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("DATESTAMP_ENV", "")

	v, err := NewViper()
	require.NoError(t, err)

	assert.Equal(t, "DEVELOPMENT", v.GetString(config.KeyEnv))
	assert.Equal(t, "INFO", v.GetString(config.KeyLogLevel))
}

func TestNewViperReadsEnvironment(t *testing.T) {
	t.Setenv("ENV", "PRODUCTION")
	t.Setenv("DATESTAMP_PATTERN", "d-M-Y")
	t.Setenv("DATESTAMP_TZ", "UTC")
	t.Setenv("DATESTAMP_CHARSET", "iso-8859-1")

	v, err := NewViper()
	require.NoError(t, err)

	assert.Equal(t, "PRODUCTION", v.GetString(config.KeyEnv))
	assert.Equal(t, "d-M-Y", v.GetString(config.KeyPattern))
	assert.Equal(t, "UTC", v.GetString(config.KeyTimezone))
	assert.Equal(t, "iso-8859-1", v.GetString(config.KeyCharset))
}
