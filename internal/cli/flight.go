package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/store"
)

// FlightOptions holds flags for the flight command.
type FlightOptions struct {
	*RootOptions
	ID  int64
	CSV string
}

// NewFlightCommand creates the flight command.
func NewFlightCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FlightOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Show a flight by ID",
		Long: `Look up a single flight by its numeric identifier.

A nonexistent ID yields zero results, not an error.

Examples:
  flightdeck flight --db ./data/flights.sqlite3 --id 540
  flightdeck flight --db ./data/flights.sqlite3 --id 540 --csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlight(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.ID, "id", 0, "flight ID (required)")
	_ = cmd.MarkFlagRequired("id")
	addCSVFlag(cmd, &opts.CSV)

	return cmd
}

func runFlight(opts *FlightOptions, cmd *cobra.Command) error {
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

	flights, err := st.FlightByID(ctx, opts.ID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query flight", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("query returned %d rows", len(flights))

	idLabel := strconv.FormatInt(opts.ID, 10)
	csvFile, err := exportCSV(opts.CSV, "details_flight_id_", idLabel, flights)
	if err != nil {
		return err
	}

	return outputFlights(cmd, opts.RootOptions, "flight_by_id", flights, csvFile)
}
