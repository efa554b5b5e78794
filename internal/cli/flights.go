package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/flight"
	"github.com/roach88/flightdeck/internal/store"
)

// FlightsOptions holds flags for the flights command.
type FlightsOptions struct {
	*RootOptions
	Airline string
	CSV     string
}

// NewFlightsCommand creates the flights command.
func NewFlightsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FlightsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Show all flights for an airline",
		Long: `List every flight for the named airline, regardless of delay.
The name must match the dataset's airline name exactly.

Examples:
  flightdeck flights --db ./data/flights.sqlite3 --airline "United Air Lines Inc."
  flightdeck flights --db ./data/flights.sqlite3 --airline "United Air Lines Inc." --csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlights(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Airline, "airline", "", "airline name (required)")
	_ = cmd.MarkFlagRequired("airline")
	addCSVFlag(cmd, &opts.CSV)

	return cmd
}

func runFlights(opts *FlightsOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	path, err := requireDatabase(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	airline := flight.NormalizeLabel(opts.Airline)
	flights, err := st.FlightsByAirline(ctx, airline)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query flights", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("query returned %d rows", len(flights))

	csvFile, err := exportCSV(opts.CSV, "flights_from_", airline, flights)
	if err != nil {
		return err
	}

	return outputFlights(cmd, opts.RootOptions, "flights_by_airline", flights, csvFile)
}
