package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/flightdeck/internal/flight"
)

// The six fixed query shapes. Every flight query selects the same column
// set: flights.ID aliased to FLIGHT_ID and DEPARTURE_DELAY aliased to
// DELAY, joined to the airline name. Schema drift in any of these column
// names breaks the corresponding operation.
const (
	flightColumns = `flights.ID AS FLIGHT_ID, flights.DAY, flights.MONTH, flights.YEAR,
		flights.ORIGIN_AIRPORT, flights.DESTINATION_AIRPORT,
		airlines.AIRLINE, flights.DEPARTURE_DELAY AS DELAY`

	// A delay is only usable when it is non-NULL and non-empty. The source
	// export uses '' for missing delays, which SQLite keeps as text even in
	// a NUMERIC column, and under its type ordering text compares greater
	// than any number. Without the emptiness check every missing delay
	// would pass the threshold comparison.
	delayedFilter = `flights.DEPARTURE_DELAY IS NOT NULL
		AND flights.DEPARTURE_DELAY != ''
		AND flights.DEPARTURE_DELAY >= ` // + threshold bound as :threshold

	queryAllAirlines = `
		SELECT DISTINCT AIRLINE FROM airlines ORDER BY AIRLINE`

	queryFlightByID = `
		SELECT ` + flightColumns + `
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		WHERE flights.ID = :id`

	queryFlightsByDate = `
		SELECT ` + flightColumns + `
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		WHERE flights.DAY = :day AND flights.MONTH = :month AND flights.YEAR = :year
		ORDER BY flights.ID`

	queryFlightsByAirline = `
		SELECT ` + flightColumns + `
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		WHERE airlines.AIRLINE = :airline
		ORDER BY flights.ID`

	queryDelayedByAirline = `
		SELECT ` + flightColumns + `
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		WHERE airlines.AIRLINE = :airline
		AND ` + delayedFilter + `:threshold
		ORDER BY flights.ID`

	queryDelayedByAirport = `
		SELECT ` + flightColumns + `
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		JOIN airports ON flights.ORIGIN_AIRPORT = airports.IATA_CODE
		WHERE airports.IATA_CODE = :airport
		AND ` + delayedFilter + `:threshold
		ORDER BY flights.ID`
)

// Airlines returns every distinct airline name, lexicographically ordered.
// Returns an empty slice (not nil) when the table is empty.
func (s *Store) Airlines(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryAllAirlines)
	if err != nil {
		return nil, fmt.Errorf("query airlines: %w", err)
	}
	defer rows.Close()

	airlines := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan airline: %w", err)
		}
		airlines = append(airlines, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airlines: %w", err)
	}

	return airlines, nil
}

// FlightByID returns the flight with the given identifier.
// A nonexistent ID yields an empty slice and a nil error; only execution
// failures produce an error.
func (s *Store) FlightByID(ctx context.Context, id int64) ([]flight.Flight, error) {
	return s.queryFlights(ctx, queryFlightByID, sql.Named("id", id))
}

// FlightsByDate returns all flights whose stored DAY, MONTH, and YEAR
// fields match the given integers exactly. No calendar validation is
// performed here; the dataset is assumed pre-validated.
func (s *Store) FlightsByDate(ctx context.Context, day, month, year int) ([]flight.Flight, error) {
	return s.queryFlights(ctx, queryFlightsByDate,
		sql.Named("day", day),
		sql.Named("month", month),
		sql.Named("year", year),
	)
}

// FlightsByAirline returns every flight for the named airline, regardless
// of delay. The name must match airlines.AIRLINE exactly.
func (s *Store) FlightsByAirline(ctx context.Context, airline string) ([]flight.Flight, error) {
	return s.queryFlights(ctx, queryFlightsByAirline, sql.Named("airline", airline))
}

// DelayedFlightsByAirline returns the named airline's flights whose
// departure delay is present and at least flight.DelayThreshold minutes.
func (s *Store) DelayedFlightsByAirline(ctx context.Context, airline string) ([]flight.Flight, error) {
	return s.queryFlights(ctx, queryDelayedByAirline,
		sql.Named("airline", airline),
		sql.Named("threshold", flight.DelayThreshold),
	)
}

// DelayedFlightsByAirport returns delayed flights originating from the
// airport with the given IATA code, joined through the airports table.
// The store performs no code validation; a malformed code matches nothing.
func (s *Store) DelayedFlightsByAirport(ctx context.Context, iata string) ([]flight.Flight, error) {
	return s.queryFlights(ctx, queryDelayedByAirport,
		sql.Named("airport", iata),
		sql.Named("threshold", flight.DelayThreshold),
	)
}

// queryFlights binds named parameters into a flight query template and
// scans the results. Returns an empty slice (not nil) on no matches.
func (s *Store) queryFlights(ctx context.Context, query string, args ...any) ([]flight.Flight, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	flights := []flight.Flight{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flights: %w", err)
	}

	return flights, nil
}

// scanFlight scans a row into a flight.Flight.
func scanFlight(rows *sql.Rows) (flight.Flight, error) {
	var f flight.Flight
	var delay sql.NullString

	if err := rows.Scan(
		&f.ID, &f.Day, &f.Month, &f.Year,
		&f.Origin, &f.Destination, &f.Airline, &delay,
	); err != nil {
		return flight.Flight{}, fmt.Errorf("scan flight: %w", err)
	}

	f.Delay = flight.ParseDelay(delay.String, delay.Valid)
	return f, nil
}
