package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/store"
)

// dateLayout is the accepted flight date input format (DD/MM/YYYY).
const dateLayout = "02/01/2006"

// DateOptions holds flags for the date command.
type DateOptions struct {
	*RootOptions
	Date string
	CSV  string
}

// NewDateCommand creates the date command.
func NewDateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Show flights by date",
		Long: `List all flights scheduled on a given date.

The date is parsed as DD/MM/YYYY; impossible dates are rejected here.
The dataset itself is matched on its stored DAY, MONTH, and YEAR fields
exactly, with no further calendar validation.

Examples:
  flightdeck date --db ./data/flights.sqlite3 --date 15/03/2015
  flightdeck date --db ./data/flights.sqlite3 --date 15/03/2015 --csv results.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "flight date as DD/MM/YYYY (required)")
	_ = cmd.MarkFlagRequired("date")
	addCSVFlag(cmd, &opts.CSV)

	return cmd
}

func runDate(opts *DateOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	date, err := time.Parse(dateLayout, opts.Date)
	if err != nil {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid date %q: expected DD/MM/YYYY", opts.Date), err)
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

	flights, err := st.FlightsByDate(ctx, date.Day(), int(date.Month()), date.Year())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query flights", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("query returned %d rows", len(flights))

	csvFile, err := exportCSV(opts.CSV, "flight_by_date_", opts.Date, flights)
	if err != nil {
		return err
	}

	return outputFlights(cmd, opts.RootOptions, "flights_by_date", flights, csvFile)
}
