package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/export"
	"github.com/roach88/flightdeck/internal/flight"
	"github.com/roach88/flightdeck/internal/report"
	"github.com/roach88/flightdeck/internal/store"
)

// menuChoice enumerates the interactive menu entries.
type menuChoice int

const (
	choiceFlightByID menuChoice = iota + 1
	choiceFlightsByDate
	choiceDelayedByAirline
	choiceDelayedByAirport
	choiceChartDelays
	choiceExit
)

// menuEntries fixes the display order and labels of the menu.
var menuEntries = []struct {
	choice menuChoice
	label  string
}{
	{choiceFlightByID, "Show flight by ID"},
	{choiceFlightsByDate, "Show flights by date"},
	{choiceDelayedByAirline, "Delayed flights by airline"},
	{choiceDelayedByAirport, "Delayed flights by origin airport"},
	{choiceChartDelays, "Plot percentage of delayed flights per airline"},
	{choiceExit, "Exit"},
}

// NewMenuCommand creates the interactive menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu over all queries",
		Long: `Run an interactive numbered menu over the query operations, with
per-result CSV export prompts and chart rendering.

Example:
  flightdeck menu --db ./data/flights.sqlite3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}

	return cmd
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	path, err := requireDatabase(opts)
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	m := &menu{
		store:   st,
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		palette: opts.Palette,
	}
	return m.run(context.Background())
}

// menu drives the interactive loop. All input goes through the scanner and
// all output through the writer, so tests can script a full session.
type menu struct {
	store   *store.Store
	in      *bufio.Scanner
	out     io.Writer
	palette []string
}

// run shows the menu and dispatches choices until Exit or end of input.
func (m *menu) run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, ok := m.readChoice()
		if !ok {
			return nil
		}

		switch choice {
		case choiceFlightByID:
			m.flightByID(ctx)
		case choiceFlightsByDate:
			m.flightsByDate(ctx)
		case choiceDelayedByAirline:
			m.delayedByAirline(ctx)
		case choiceDelayedByAirport:
			m.delayedByAirport(ctx)
		case choiceChartDelays:
			m.chartDelays(ctx)
		case choiceExit:
			return nil
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, "Menu:")
	for _, entry := range menuEntries {
		fmt.Fprintf(m.out, "%d. %s\n", entry.choice, entry.label)
	}
}

// readChoice reads menu selections until one is valid.
// Returns ok=false on end of input.
func (m *menu) readChoice() (menuChoice, bool) {
	for {
		line, ok := m.readLine("")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= int(choiceFlightByID) && n <= int(choiceExit) {
			return menuChoice(n), true
		}
		fmt.Fprintln(m.out, "Try again...")
	}
}

// readLine prints a prompt and reads one input line.
// Returns ok=false on end of input.
func (m *menu) readLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(m.out, prompt)
	}
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *menu) flightByID(ctx context.Context) {
	var id int64
	for {
		line, ok := m.readLine("Enter flight ID: ")
		if !ok {
			return
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			id = n
			break
		}
		fmt.Fprintln(m.out, "Try again...")
	}

	flights, err := m.store.FlightByID(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "Query error: %v\n", err)
		return
	}
	renderFlightLines(m.out, flights)
	m.maybeExportCSV("details_flight_id_", strconv.FormatInt(id, 10), flights)
}

func (m *menu) flightsByDate(ctx context.Context) {
	var date time.Time
	var raw string
	for {
		line, ok := m.readLine("Enter date in DD/MM/YYYY format: ")
		if !ok {
			return
		}
		d, err := time.Parse(dateLayout, strings.TrimSpace(line))
		if err == nil {
			date, raw = d, strings.TrimSpace(line)
			break
		}
		fmt.Fprintln(m.out, "Try again...")
	}

	flights, err := m.store.FlightsByDate(ctx, date.Day(), int(date.Month()), date.Year())
	if err != nil {
		fmt.Fprintf(m.out, "Query error: %v\n", err)
		return
	}
	renderFlightLines(m.out, flights)
	m.maybeExportCSV("flight_by_date_", raw, flights)
}

func (m *menu) delayedByAirline(ctx context.Context) {
	line, ok := m.readLine("Enter airline name: ")
	if !ok {
		return
	}
	airline := flight.NormalizeLabel(line)

	flights, err := m.store.DelayedFlightsByAirline(ctx, airline)
	if err != nil {
		fmt.Fprintf(m.out, "Query error: %v\n", err)
		return
	}
	renderFlightLines(m.out, flights)
	m.maybeExportCSV("delayed_flights_from_", airline, flights)
}

func (m *menu) delayedByAirport(ctx context.Context) {
	var iata string
	for {
		line, ok := m.readLine("Enter origin airport IATA code: ")
		if !ok {
			return
		}
		code := strings.ToUpper(flight.NormalizeLabel(line))
		if flight.ValidIATA(code) {
			iata = code
			break
		}
		fmt.Fprintln(m.out, "Try again...")
	}

	flights, err := m.store.DelayedFlightsByAirport(ctx, iata)
	if err != nil {
		fmt.Fprintf(m.out, "Query error: %v\n", err)
		return
	}
	renderFlightLines(m.out, flights)
	m.maybeExportCSV("delayed_flights_from_airport_", iata, flights)
}

func (m *menu) chartDelays(ctx context.Context) {
	shares, err := report.DelayShares(ctx, m.store)
	if err != nil {
		fmt.Fprintf(m.out, "Query error: %v\n", err)
		return
	}

	config := report.BuildChart(
		"Percentage of Delayed Flights per Airline", "Delay (%)",
		shares, m.palette)
	if config == nil {
		fmt.Fprintln(m.out, "No flight data to chart.")
		return
	}

	line, ok := m.readLine("Please name your output file (e.g. delays.svg): ")
	if !ok {
		return
	}
	filename := strings.TrimSpace(line)
	if !strings.HasSuffix(filename, ".svg") {
		filename += ".svg"
	}

	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(m.out, "Error while saving file: %v\n", err)
		return
	}
	defer f.Close()

	if err := report.RenderSVG(f, config); err != nil {
		fmt.Fprintf(m.out, "Error while saving file: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Chart saved as %s\n", filename)
}

// maybeExportCSV walks the export confirmation dialog and writes the file.
func (m *menu) maybeExportCSV(prefix, label string, flights []flight.Flight) {
	filename, ok := m.confirmCSVExport(export.SafeFilename(prefix, label))
	if !ok {
		return
	}

	if err := export.WriteFlightsFile(filename, flights); err != nil {
		fmt.Fprintf(m.out, "Error while saving file: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "File saved successfully as: %s\n", filename)
}

// confirmCSVExport asks whether to export and which filename to use.
// Returns ok=false when the user declines or input ends.
func (m *menu) confirmCSVExport(defaultFilename string) (string, bool) {
	for {
		line, ok := m.readLine("Would you like to export this data to a CSV file? (y/n): ")
		if !ok {
			return "", false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			confirm, ok := m.readLine(fmt.Sprintf("Use the default filename '%s'? (y/n): ", defaultFilename))
			if !ok {
				return "", false
			}
			if strings.ToLower(strings.TrimSpace(confirm)) == "y" {
				return defaultFilename, true
			}
			custom, ok := m.readLine("Enter filename (e.g., results.csv): ")
			if !ok {
				return "", false
			}
			custom = strings.TrimSpace(custom)
			if !strings.HasSuffix(custom, ".csv") {
				custom += ".csv"
			}
			return custom, true
		case "n":
			return "", false
		default:
			fmt.Fprintln(m.out, "Please enter 'y' or 'n'.")
		}
	}
}
