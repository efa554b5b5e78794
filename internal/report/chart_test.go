package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flightdeck/internal/flight"
)

func TestBuildChart(t *testing.T) {
	shares := []Share{
		{Label: "ACME", Value: 30.0},
		{Label: "Borealis", Value: 33.333333},
	}

	config := BuildChart("Title", "Delay (%)", shares, nil)
	require.NotNil(t, config)
	assert.Equal(t, "Title", config.Title)
	assert.Equal(t, "Delay (%)", config.XLabel)
	require.Len(t, config.Points, 2)
	assert.Equal(t, ChartPoint{Label: "ACME", Value: 30.0}, config.Points[0])
	assert.Equal(t, ChartPoint{Label: "Borealis", Value: 33.33}, config.Points[1])

	// Default palette cycles per bar.
	require.Len(t, config.Colors, 2)
	assert.Equal(t, DefaultPalette[0], config.Colors[0])
	assert.Equal(t, DefaultPalette[1], config.Colors[1])
}

func TestBuildChartEmpty(t *testing.T) {
	assert.Nil(t, BuildChart("Title", "X", nil, nil))
	assert.Nil(t, BuildChart("Title", "X", []Share{}, nil))
}

func TestBuildChartCustomPalette(t *testing.T) {
	shares := []Share{{Label: "A", Value: 1}, {Label: "B", Value: 2}, {Label: "C", Value: 3}}
	palette := []string{"#111111", "#222222"}

	config := BuildChart("Title", "X", shares, palette)
	require.NotNil(t, config)
	assert.Equal(t, []string{"#111111", "#222222", "#111111"}, config.Colors)
}

func TestDelayHistogram(t *testing.T) {
	flights := []flight.Flight{
		{ID: 1, Origin: "JFK", Airline: "ACME", Delay: flight.Delay{Minutes: 45, Present: true}},
		{ID: 2, Origin: "LAX", Delay: flight.Delay{Minutes: 20, Present: true}},
		{ID: 3, Delay: flight.Delay{}},
	}

	shares := DelayHistogram(flights)
	require.Len(t, shares, 3)
	assert.Equal(t, Share{Label: "ACME", Value: 45}, shares[0])
	assert.Equal(t, Share{Label: "LAX", Value: 20}, shares[1]) // origin fallback
	assert.Equal(t, Share{Label: "Unknown", Value: 0}, shares[2])
}

func TestRoundTo2(t *testing.T) {
	assert.Equal(t, 33.33, RoundTo2(33.333333))
	assert.Equal(t, 66.67, RoundTo2(66.666666))
	assert.Equal(t, 30.0, RoundTo2(30.0))
}
