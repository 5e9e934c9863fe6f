package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"github.com/lucax88x/datestamp/internal/homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	KeyConfig   = "config"
	KeyPattern  = "pattern"
	KeyTimezone = "timezone"
	KeyCharset  = "charset"
	KeyInput    = "input_charset"
	KeyEnv      = "env"
	KeyLogLevel = "log_level"
	KeyAliases  = "aliases"
)

const aliasPrefix = "@"

var ErrUnknownAlias = errors.New("unknown pattern alias")

type Cfg struct {
	Pattern      string
	Timezone     string
	Charset      string
	InputCharset string
	Env          string
	LogLevel     string
	Aliases      map[string]string
}

type ConfigData struct {
	Pattern      string            `yaml:"pattern"`
	Timezone     string            `yaml:"timezone"`
	Charset      string            `yaml:"charset"`
	InputCharset string            `yaml:"input_charset"`
	Env          string            `yaml:"env"`
	LogLevel     string            `yaml:"log_level"`
	Aliases      map[string]string `yaml:"aliases"`
}

func DefaultPath() (string, error) {
	dir, err := homedir.Get()

	if err != nil {
		//nolint:errorlint // no wrap
		return "", fmt.Errorf("config: error getting home dir. %v", err)
	}

	return filepath.Join(dir, "config.yaml"), nil
}

func ReadYaml(fs afero.Fs, path string) (*ConfigData, error) {
	var configData ConfigData

	yamlData, err := afero.ReadFile(fs, path)

	if err != nil {
		return nil, fmt.Errorf("config: could not read file. %w", err)
	}

	err = yaml.Unmarshal(yamlData, &configData)

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	return &configData, nil
}

// Resolve merges the YAML file under flags and environment variables already
// bound to v. An explicit --config path must exist, the default one may not.
func Resolve(v *viper.Viper, fs afero.Fs) (*Cfg, error) {
	path := v.GetString(KeyConfig)
	explicit := path != ""

	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	configData, err := ReadYaml(fs, path)

	switch {
	case err == nil:
		if mergeErr := v.MergeConfigMap(configData.toMap()); mergeErr != nil {
			return nil, fmt.Errorf("config: could not merge cfg. %w", mergeErr)
		}
	case !explicit && errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	cfg := &Cfg{
		Pattern:      v.GetString(KeyPattern),
		Timezone:     v.GetString(KeyTimezone),
		Charset:      v.GetString(KeyCharset),
		InputCharset: v.GetString(KeyInput),
		Env:          v.GetString(KeyEnv),
		LogLevel:     v.GetString(KeyLogLevel),
		Aliases:      v.GetStringMapString(KeyAliases),
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location returns the configured time zone, nil meaning the clock's own.
func (c *Cfg) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil //nolint:nilnil // no zone configured
	}

	loc, err := time.LoadLocation(c.Timezone)

	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone '%s': %w", c.Timezone, err)
	}

	return loc, nil
}

// ResolvePattern expands "@name" aliases and returns other patterns as they
// are.
func (c *Cfg) ResolvePattern(pattern string) (string, error) {
	name, ok := strings.CutPrefix(pattern, aliasPrefix)

	if !ok || name == "" {
		return pattern, nil
	}

	aliased, found := c.Aliases[strings.ToLower(name)]

	if !found {
		return "", fmt.Errorf("config: %w '%s'", ErrUnknownAlias, name)
	}

	return aliased, nil
}

func (d *ConfigData) toMap() map[string]any {
	m := map[string]any{}

	set := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}

	set(KeyPattern, d.Pattern)
	set(KeyTimezone, d.Timezone)
	set(KeyCharset, d.Charset)
	set(KeyInput, d.InputCharset)
	set(KeyEnv, d.Env)
	set(KeyLogLevel, d.LogLevel)

	if len(d.Aliases) > 0 {
		aliases := make(map[string]any, len(d.Aliases))
		for name, pattern := range d.Aliases {
			aliases[name] = pattern
		}
		m[KeyAliases] = aliases
	}

	return m
}
