package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightByID(t *testing.T) {
	dbPath := createFixtureDB(t)

	buf := &bytes.Buffer{}
	cmd := NewFlightCommand(textOpts(dbPath))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--id", "1"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Got 1 results.")
	assert.Contains(t, out, "JFK -> LAX")
	assert.Contains(t, out, "ACME")
	assert.Contains(t, out, "45")
}

func TestFlightByIDNotFound(t *testing.T) {
	dbPath := createFixtureDB(t)

	buf := &bytes.Buffer{}
	cmd := NewFlightCommand(textOpts(dbPath))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--id", "9999"})

	// A missing flight is an empty result, not a failure.
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Got 0 results.")
}

func TestFlightMissingIDFlag(t *testing.T) {
	dbPath := createFixtureDB(t)

	buf := &bytes.Buffer{}
	cmd := NewFlightCommand(textOpts(dbPath))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestFlightNonNumericID(t *testing.T) {
	dbPath := createFixtureDB(t)

	buf := &bytes.Buffer{}
	cmd := NewFlightCommand(textOpts(dbPath))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--id", "abc"})

	require.Error(t, cmd.Execute())
}

func TestFlightCSVExport(t *testing.T) {
	dbPath := createFixtureDB(t)
	outFile := filepath.Join(t.TempDir(), "flight.csv")

	buf := &bytes.Buffer{}
	cmd := NewFlightCommand(textOpts(dbPath))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--id", "1", "--csv", outFile})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "File saved successfully as: "+outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FLIGHT_ID,DAY,MONTH,YEAR")
	assert.Contains(t, string(data), "1,15,3,2015,JFK,LAX,ACME,45")
}

func TestFlightCSVDefaultFilename(t *testing.T) {
	dbPath := createFixtureDB(t)
	chdir(t, t.TempDir())

	buf := &bytes.Buffer{}
	cmd := NewFlightCommand(textOpts(dbPath))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--id", "1", "--csv"})

	require.NoError(t, cmd.Execute())

	// Filename derived from the query label.
	_, err := os.Stat("details_flight_id_1.csv")
	require.NoError(t, err)
}

func TestFlightJSONEnvelope(t *testing.T) {
	dbPath := createFixtureDB(t)

	buf := &bytes.Buffer{}
	opts := textOpts(dbPath)
	opts.Format = "json"
	cmd := NewFlightCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--id", "1"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "flight_by_id", data["query"])
	assert.Equal(t, float64(1), data["count"])
}
