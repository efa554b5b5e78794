package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/export"
	"github.com/roach88/flightdeck/internal/flight"
)

// flightsResult is the JSON payload shared by all flight query commands.
type flightsResult struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Flights []flight.Flight `json:"flights"`
	CSVFile string          `json:"csv_file,omitempty"`
}

// outputFlights renders a query's result set in the configured format and
// reports the CSV file when one was written.
func outputFlights(cmd *cobra.Command, opts *RootOptions, query string, flights []flight.Flight, csvFile string) error {
	if opts.Format == "json" {
		return outputJSON(cmd.OutOrStdout(), flightsResult{
			Query:   query,
			Count:   len(flights),
			Flights: flights,
			CSVFile: csvFile,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Got %d results.\n", len(flights))
	if len(flights) > 0 {
		renderFlightTable(w, flights)
	}
	if csvFile != "" {
		fmt.Fprintf(w, "File saved successfully as: %s\n", csvFile)
	}
	return nil
}

// renderFlightTable prints flights as a console table.
func renderFlightTable(w io.Writer, flights []flight.Flight) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Flight ID", "Date", "Route", "Airline", "Delay (min)"})
	table.SetAutoWrapText(false)
	for _, f := range flights {
		table.Append([]string{
			strconv.FormatInt(f.ID, 10),
			fmt.Sprintf("%02d/%02d/%04d", f.Day, f.Month, f.Year),
			f.Origin + " -> " + f.Destination,
			f.Airline,
			strconv.Itoa(f.Delay.Minutes),
		})
	}
	table.Render()
}

// renderFlightLines prints flights in the compact per-row form used by the
// interactive menu. Delayed flights get a trailing delay note.
func renderFlightLines(w io.Writer, flights []flight.Flight) {
	fmt.Fprintf(w, "Got %d results.\n", len(flights))
	for _, f := range flights {
		if f.Delay.Present && f.Delay.Minutes > 0 {
			fmt.Fprintf(w, "%d. %s -> %s by %s, Delay: %d Minutes\n",
				f.ID, f.Origin, f.Destination, f.Airline, f.Delay.Minutes)
		} else {
			fmt.Fprintf(w, "%d. %s -> %s by %s\n",
				f.ID, f.Origin, f.Destination, f.Airline)
		}
	}
}

// newFormatter builds a diagnostic formatter from the command's error writer
// and the global flags.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}
}

// csvAutoFilename is the sentinel NoOptDefVal for --csv given without a
// value: the filename is derived from the query label.
const csvAutoFilename = "auto"

// addCSVFlag registers the optional --csv export flag on a query command.
func addCSVFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "csv", "", "export results to CSV (optionally set the filename)")
	cmd.Flags().Lookup("csv").NoOptDefVal = csvAutoFilename
}

// exportCSV writes flights to a CSV file when the --csv flag was given.
// Returns the filename written, or "" when no export was requested.
func exportCSV(csvFlag, prefix, label string, flights []flight.Flight) (string, error) {
	if csvFlag == "" {
		return "", nil
	}

	filename := csvFlag
	if filename == csvAutoFilename {
		filename = export.SafeFilename(prefix, label)
	} else if !strings.HasSuffix(filename, ".csv") {
		filename += ".csv"
	}

	if err := export.WriteFlightsFile(filename, flights); err != nil {
		return "", WrapExitError(ExitCommandError, "failed to export CSV", err)
	}
	return filename, nil
}
