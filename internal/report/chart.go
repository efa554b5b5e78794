package report

import (
	"math"

	"github.com/roach88/flightdeck/internal/flight"
)

// DefaultPalette is the bar color cycle used when the config file does not
// override it.
var DefaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartPoint is a single bar: a label and its value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartConfig describes a horizontal bar chart ready for rendering.
type ChartConfig struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	Points []ChartPoint `json:"points"`
	Colors []string     `json:"colors"`
}

// BuildChart produces a ChartConfig from labeled shares.
// Returns nil when there is nothing to plot. Values are rounded to two
// decimals; bar colors cycle through the palette.
func BuildChart(title, xlabel string, shares []Share, palette []string) *ChartConfig {
	if len(shares) == 0 {
		return nil
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	points := make([]ChartPoint, 0, len(shares))
	for _, s := range shares {
		points = append(points, ChartPoint{
			Label: s.Label,
			Value: RoundTo2(s.Value),
		})
	}

	config := &ChartConfig{
		Title:  title,
		XLabel: xlabel,
		Points: points,
		Colors: assignColors(len(points), palette),
	}
	return config
}

// DelayHistogram maps flights to per-flight delay shares for charting.
// Each bar is labeled with the airline, falling back to the origin airport
// when the airline name is missing. Absent delays chart as zero.
func DelayHistogram(flights []flight.Flight) []Share {
	shares := make([]Share, 0, len(flights))
	for _, f := range flights {
		label := f.Airline
		if label == "" {
			label = f.Origin
		}
		if label == "" {
			label = "Unknown"
		}
		shares = append(shares, Share{
			Label: label,
			Value: float64(f.Delay.Minutes),
		})
	}
	return shares
}

// RoundTo2 rounds a value to two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func assignColors(count int, palette []string) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
