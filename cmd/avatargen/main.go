// Command avatargen renders deterministic avatars to PNG files.
//
// Usage:
//
//	avatargen render --theme smile --id alice@example.com --size 256 --out alice.png
//	avatargen batch --theme digidoodle --out avatars/ alice@example.com bob@example.com
//	avatargen themes
//	avatargen genconfig avatargen.toml
//
// Configuration is read from the file given with --config (TOML, JSON or
// YAML), then AVATARGEN_* environment variables, then flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "avatargen",
		Short:         "Deterministic avatar generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file")
	root.PersistentFlags().String("log.level", "warn", "log level: debug, info, warn, error or none")

	root.AddCommand(
		newRenderCommand(&configFile),
		newBatchCommand(&configFile),
		newThemesCommand(),
		newGenConfigCommand(),
	)
	return root
}

// prepare loads and validates the configuration and sets up logging.
func prepare(cmd *cobra.Command, configFile string) (Config, error) {
	conf, err := loadConfig(cmd, configFile)
	if err != nil {
		return Config{}, err
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	if err := setupLogging(conf.Log.Level); err != nil {
		return Config{}, err
	}
	return conf, nil
}
