package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/flight"
	"github.com/roach88/flightdeck/internal/store"
)

// DelayedOptions holds flags for the delayed subcommands.
type DelayedOptions struct {
	*RootOptions
	CSV string
}

// NewDelayedCommand creates the delayed command group.
func NewDelayedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delayed",
		Short: "Show delayed flights (departure delay >= 20 minutes)",
	}

	cmd.AddCommand(newDelayedAirlineCommand(rootOpts))
	cmd.AddCommand(newDelayedAirportCommand(rootOpts))

	return cmd
}

func newDelayedAirlineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DelayedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "airline NAME",
		Short: "Delayed flights for an airline",
		Long: `List flights for the named airline whose departure delay is present
and at least 20 minutes.

Examples:
  flightdeck delayed airline "Spirit Air Lines" --db ./data/flights.sqlite3
  flightdeck delayed airline "Spirit Air Lines" --db ./data/flights.sqlite3 --csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelayedAirline(opts, cmd, args[0])
		},
	}

	addCSVFlag(cmd, &opts.CSV)
	return cmd
}

func newDelayedAirportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DelayedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "airport IATA",
		Short: "Delayed flights from an origin airport",
		Long: `List flights originating at the given airport (3-letter IATA code)
whose departure delay is present and at least 20 minutes.

The code is validated here; the query layer itself would simply match
zero rows for a malformed code.

Examples:
  flightdeck delayed airport JFK --db ./data/flights.sqlite3
  flightdeck delayed airport JFK --db ./data/flights.sqlite3 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelayedAirport(opts, cmd, args[0])
		},
	}

	addCSVFlag(cmd, &opts.CSV)
	return cmd
}

func runDelayedAirline(opts *DelayedOptions, cmd *cobra.Command, name string) error {
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

	airline := flight.NormalizeLabel(name)
	flights, err := st.DelayedFlightsByAirline(ctx, airline)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query delayed flights", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("query returned %d rows", len(flights))

	csvFile, err := exportCSV(opts.CSV, "delayed_flights_from_", airline, flights)
	if err != nil {
		return err
	}

	return outputFlights(cmd, opts.RootOptions, "delayed_flights_by_airline", flights, csvFile)
}

func runDelayedAirport(opts *DelayedOptions, cmd *cobra.Command, code string) error {
	ctx := context.Background()

	iata := strings.ToUpper(flight.NormalizeLabel(code))
	if !flight.ValidIATA(iata) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid IATA code %q: must be exactly %d letters", code, flight.IATALength))
	}

	path, err := requireDatabase(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	flights, err := st.DelayedFlightsByAirport(ctx, iata)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query delayed flights", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("query returned %d rows", len(flights))

	csvFile, err := exportCSV(opts.CSV, "delayed_flights_from_airport_", iata, flights)
	if err != nil {
		return err
	}

	return outputFlights(cmd, opts.RootOptions, "delayed_flights_by_airport", flights, csvFile)
}
