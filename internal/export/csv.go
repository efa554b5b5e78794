// Package export writes query results to CSV files and derives safe
// filenames from query labels.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/flightdeck/internal/flight"
)

// FlightHeader is the fixed column order for exported flight rows.
var FlightHeader = []string{
	"FLIGHT_ID", "DAY", "MONTH", "YEAR",
	"ORIGIN_AIRPORT", "DESTINATION_AIRPORT", "AIRLINE", "DELAY",
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]`)

// SafeFilename builds a CSV filename from a prefix and a user-supplied
// label. The label is normalized, lowercased, and every non-alphanumeric
// character is replaced with an underscore; a .csv suffix is ensured.
func SafeFilename(prefix, label string) string {
	safe := unsafeFilenameChars.ReplaceAllString(
		strings.ToLower(flight.NormalizeLabel(label)), "_")
	name := prefix + safe
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	return name
}

// FlightRows converts flights to CSV records in FlightHeader order.
// An absent delay is written as 0, matching how rows are displayed.
func FlightRows(flights []flight.Flight) [][]string {
	rows := make([][]string, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []string{
			strconv.FormatInt(f.ID, 10),
			strconv.Itoa(f.Day),
			strconv.Itoa(f.Month),
			strconv.Itoa(f.Year),
			f.Origin,
			f.Destination,
			f.Airline,
			strconv.Itoa(f.Delay.Minutes),
		})
	}
	return rows
}

// WriteCSV writes a comma-delimited UTF-8 file with a header row.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// WriteFlightsFile writes flights to the named CSV file.
func WriteFlightsFile(filename string, flights []flight.Flight) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	if err := WriteCSV(f, FlightHeader, FlightRows(flights)); err != nil {
		return err
	}
	return f.Close()
}
