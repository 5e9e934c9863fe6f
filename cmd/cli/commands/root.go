package commands

import (
	"context"
	"fmt"

	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flag name -> viper key
//
//nolint:gochecknoglobals // ok
var persistentFlags = map[string]string{
	"config":        config.KeyConfig,
	"pattern":       config.KeyPattern,
	"tz":            config.KeyTimezone,
	"charset":       config.KeyCharset,
	"input-charset": config.KeyInput,
	"env":           config.KeyEnv,
	"log-level":     config.KeyLogLevel,
}

func NewRootCmd(ctx context.Context, deps runner.Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datestamp",
		Short: "render the current date and time with PHP style patterns",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(deps.Viper, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to the yaml config file (default $HOME/.config/datestamp/config.yaml)")
	flags.String("pattern", "", "default pattern used when none is given (default \"Y-m-d H:i:s\")")
	flags.String("tz", "", "time zone, e.g. Europe/Rome (default local)")
	flags.String("charset", "", "output charset, e.g. iso-8859-1 (default utf-8)")
	flags.String("input-charset", "", "charset of patterns read by stream (default utf-8, falling back to macintosh)")
	flags.String("env", "", "environment name reported by dump (default $ENV or DEVELOPMENT)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		NewRenderCmd(ctx, deps),
		NewDumpCmd(ctx, deps),
		NewPingCmd(ctx, deps),
		NewWatchCmd(ctx, deps),
		NewStreamCmd(ctx, deps),
	)

	if deps.Console != nil {
		rootCmd.SetIn(deps.Console.Stdin)
		rootCmd.SetOut(deps.Console.Stdout)
		rootCmd.SetErr(deps.Console.Stderr)
	}

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range persistentFlags {
		flag := flags.Lookup(name)

		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("commands: could not bind flag '%s': %w", name, err)
		}
	}

	return nil
}
