// Package report computes derived delay statistics over store query results
// and renders them as horizontal bar charts.
package report

import (
	"context"
	"fmt"

	"github.com/roach88/flightdeck/internal/store"
)

// Share is one labeled value in a chart: an airline (or airport) and its
// associated percentage or delay figure.
type Share struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DelayShares computes the percentage of delayed flights per airline.
//
// For each airline returned by Airlines it fetches the full flight set and
// the delayed subset and divides the counts. Airlines with zero flights are
// skipped. Results follow the store's airline order (lexicographic).
//
// Each call issues 2 queries per airline with no caching across calls; N
// airlines means 2N round-trips.
func DelayShares(ctx context.Context, st *store.Store) ([]Share, error) {
	airlines, err := st.Airlines(ctx)
	if err != nil {
		return nil, fmt.Errorf("list airlines: %w", err)
	}

	shares := []Share{}
	for _, airline := range airlines {
		all, err := st.FlightsByAirline(ctx, airline)
		if err != nil {
			return nil, fmt.Errorf("flights for %q: %w", airline, err)
		}

		delayed, err := st.DelayedFlightsByAirline(ctx, airline)
		if err != nil {
			return nil, fmt.Errorf("delayed flights for %q: %w", airline, err)
		}

		total := len(all)
		if total == 0 {
			continue
		}

		shares = append(shares, Share{
			Label: airline,
			Value: float64(len(delayed)) / float64(total) * 100,
		})
	}

	return shares, nil
}
