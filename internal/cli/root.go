// Package cli implements the unitconv command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the unitconv CLI.
// It loads configuration, wires up logging and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert amounts between units of distance, mass, temperature and time",
		Long:          "unitconv: convert an amount from one unit to another within a category and print the result with the unit's full name",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				cfg, err := config.NewFromPath(configPath)
				if err != nil {
					return fmt.Errorf("loading configuration: %w", err)
				}
				config.SetGlobalConfig(cfg)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"configuration file (default $UNITCONV_HOME/config.yaml or ~/.unitconv/config.yaml)")
	cmd.AddCommand(NewConvertCmd(), NewCategoriesCmd(), NewUnitsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Convert one kilometer to meters
  unitconv convert 1 km meters

  # Convert a temperature, printing two fraction digits
  unitconv convert 98.6 fahrenheit celsius --precision 2

  # Emit JSON
  unitconv convert 3 hours minutes --output json

  # List categories and their units
  unitconv categories
  unitconv units temperature

  # Change the default output precision
  unitconv config set output.precision 5`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
