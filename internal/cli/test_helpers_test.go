package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/flightdeck/internal/store"
)

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

// createFixtureDB builds a small dataset in a temp dir and returns its path:
//
//	ACME:     flight 1 JFK->LAX delay 45 (15/03/2015), flight 2 JFK->ORD delay 5
//	Borealis: flight 5 ORD->JFK delay 20
func createFixtureDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.sqlite3")

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	stmts := []string{
		`INSERT INTO airlines (ID, AIRLINE) VALUES (1, 'ACME'), (2, 'Borealis')`,
		`INSERT INTO airports (IATA_CODE, AIRPORT) VALUES
			('JFK', 'John F. Kennedy International'),
			('LAX', 'Los Angeles International'),
			('ORD', 'Chicago O''Hare International')`,
		`INSERT INTO flights (ID, DAY, MONTH, YEAR, AIRLINE, ORIGIN_AIRPORT, DESTINATION_AIRPORT, DEPARTURE_DELAY) VALUES
			(1, 15, 3, 2015, 1, 'JFK', 'LAX', '45'),
			(2, 15, 3, 2015, 1, 'JFK', 'ORD', '5'),
			(5, 16, 3, 2015, 2, 'ORD', 'JFK', '20')`,
	}
	for _, stmt := range stmts {
		_, err := st.DB().Exec(stmt)
		require.NoError(t, err)
	}

	return path
}

// textOpts returns root options for direct subcommand construction in tests.
func textOpts(dbPath string) *RootOptions {
	return &RootOptions{Format: "text", Database: dbPath}
}
