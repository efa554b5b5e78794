package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStore creates a file-backed store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.sqlite3")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedAirline inserts an airline row.
func seedAirline(t *testing.T, s *Store, id int64, name string) {
	t.Helper()
	_, err := s.DB().Exec(`INSERT INTO airlines (ID, AIRLINE) VALUES (?, ?)`, id, name)
	require.NoError(t, err)
}

// seedAirport inserts an airport row.
func seedAirport(t *testing.T, s *Store, iata, name string) {
	t.Helper()
	_, err := s.DB().Exec(`INSERT INTO airports (IATA_CODE, AIRPORT) VALUES (?, ?)`, iata, name)
	require.NoError(t, err)
}

// seedFlight inserts a flight row. delay may be a string (the dataset's
// text representation, "" for missing) or nil for NULL.
func seedFlight(t *testing.T, s *Store, id int64, day, month, year int, airlineID int64, origin, dest string, delay any) {
	t.Helper()
	_, err := s.DB().Exec(`
		INSERT INTO flights (ID, DAY, MONTH, YEAR, AIRLINE, ORIGIN_AIRPORT, DESTINATION_AIRPORT, DEPARTURE_DELAY)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, day, month, year, airlineID, origin, dest, delay)
	require.NoError(t, err)
}
