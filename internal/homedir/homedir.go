package homedir

import (
	"fmt"
	"os"
	"path/filepath"

	gohomedir "github.com/mitchellh/go-homedir"
)

const appName = "datestamp"

// Get returns the configuration directory, $XDG_CONFIG_HOME/datestamp or
// $HOME/.config/datestamp.
func Get() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	home, err := gohomedir.Dir()

	if err != nil {
		return "", fmt.Errorf("homedir: could not get user home dir: %w", err)
	}

	return filepath.Join(home, ".config", appName), nil
}
