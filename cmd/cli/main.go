package main

import (
	"os"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/setup"
	"github.com/spf13/viper"
)

func cli(viper *viper.Viper, console *console.Console) setup.ProgramExecutor {
	return setup.NewCliExecutor(viper, console)
}

func main() {
	result := setup.Run(cli)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
