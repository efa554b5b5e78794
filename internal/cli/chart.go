package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/flight"
	"github.com/roach88/flightdeck/internal/report"
	"github.com/roach88/flightdeck/internal/store"
)

// ChartOptions holds flags for the chart subcommands.
type ChartOptions struct {
	*RootOptions
	Out     string
	Airline string
	Airport string
}

// chartResult is the JSON payload for chart commands.
type chartResult struct {
	File string `json:"file"`
	Bars int    `json:"bars"`
}

// NewChartCommand creates the chart command group.
func NewChartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render delay statistics as SVG bar charts",
	}

	cmd.AddCommand(newChartDelaysCommand(rootOpts))
	cmd.AddCommand(newChartHistogramCommand(rootOpts))

	return cmd
}

func newChartDelaysCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delays",
		Short: "Chart the percentage of delayed flights per airline",
		Long: `Compute the percentage of delayed flights (>= 20 minutes) per airline
and render the result as a horizontal bar chart.

Each airline costs two queries (all flights, delayed flights); nothing is
cached between runs.

Examples:
  flightdeck chart delays --db ./data/flights.sqlite3 --out delays.svg`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChartDelays(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "output SVG file (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newChartHistogramCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Chart raw per-flight delays for an airline or airport",
		Long: `Render each delayed flight's departure delay as one bar, labeled with
the airline (or origin airport as a fallback).

Exactly one of --airline or --airport must be given.

Examples:
  flightdeck chart histogram --db ./data/flights.sqlite3 --airline "Spirit Air Lines" --out spirit.svg
  flightdeck chart histogram --db ./data/flights.sqlite3 --airport JFK --out jfk.svg`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChartHistogram(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "output SVG file (required)")
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().StringVar(&opts.Airline, "airline", "", "airline name")
	cmd.Flags().StringVar(&opts.Airport, "airport", "", "origin airport IATA code")

	return cmd
}

func runChartDelays(opts *ChartOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	path, err := requireDatabase(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	shares, err := report.DelayShares(ctx, st)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to compute delay percentages", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("computed shares for %d airlines", len(shares))

	config := report.BuildChart(
		"Percentage of Delayed Flights per Airline", "Delay (%)",
		shares, opts.Palette)
	return saveChart(opts, cmd, config)
}

func runChartHistogram(opts *ChartOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	if (opts.Airline == "") == (opts.Airport == "") {
		return NewExitError(ExitCommandError, "exactly one of --airline or --airport must be given")
	}

	path, err := requireDatabase(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var flights []flight.Flight
	if opts.Airline != "" {
		flights, err = st.DelayedFlightsByAirline(ctx, flight.NormalizeLabel(opts.Airline))
	} else {
		iata := strings.ToUpper(flight.NormalizeLabel(opts.Airport))
		if !flight.ValidIATA(iata) {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("invalid IATA code %q: must be exactly %d letters", opts.Airport, flight.IATALength))
		}
		flights, err = st.DelayedFlightsByAirport(ctx, iata)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query delayed flights", err)
	}
	newFormatter(cmd, opts.RootOptions).VerboseLog("query returned %d rows", len(flights))

	config := report.BuildChart(
		"Flight Delays Histogram", "Delay (min)",
		report.DelayHistogram(flights), opts.Palette)
	return saveChart(opts, cmd, config)
}

// saveChart renders the chart to the --out file and reports the result.
func saveChart(opts *ChartOptions, cmd *cobra.Command, config *report.ChartConfig) error {
	if config == nil {
		if opts.Format == "json" {
			return outputJSON(cmd.OutOrStdout(), chartResult{})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No flight data to chart.")
		return nil
	}

	filename := opts.Out
	if !strings.HasSuffix(filename, ".svg") {
		filename += ".svg"
	}

	f, err := os.Create(filename)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create chart file", err)
	}
	defer f.Close()

	if err := report.RenderSVG(f, config); err != nil {
		return WrapExitError(ExitCommandError, "failed to render chart", err)
	}
	if err := f.Close(); err != nil {
		return WrapExitError(ExitCommandError, "failed to write chart file", err)
	}

	if opts.Format == "json" {
		return outputJSON(cmd.OutOrStdout(), chartResult{
			File: filename,
			Bars: len(config.Points),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Chart saved as %s\n", filename)
	return nil
}
