package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database   string
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"
	Palette    []string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the flightdeck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "flightdeck",
		Short: "Query and chart the flight-delay dataset",
		Long: `flightdeck queries a SQLite flight-delay dataset (flights, airlines,
airports), prints the results, optionally exports them to CSV, and renders
delay statistics as horizontal bar charts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}

			// Flags win over the config file; the file fills in what
			// the command line left unset.
			if opts.Database == "" {
				opts.Database = cfg.Database
			}
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			opts.Palette = cfg.Palette

			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the SQLite flights dataset")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file (or set FLIGHTDECK_CONFIG)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewAirlinesCommand(opts))
	cmd.AddCommand(NewFlightCommand(opts))
	cmd.AddCommand(NewDateCommand(opts))
	cmd.AddCommand(NewFlightsCommand(opts))
	cmd.AddCommand(NewDelayedCommand(opts))
	cmd.AddCommand(NewChartCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// requireDatabase returns the dataset path or a command error when neither
// the --db flag nor the config file provided one.
func requireDatabase(opts *RootOptions) (string, error) {
	if opts.Database == "" {
		return "", NewExitError(ExitCommandError, "no dataset given: set --db or the config file's database field")
	}
	return opts.Database, nil
}
