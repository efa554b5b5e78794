package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/flightdeck/internal/store"
)

// AirlinesOptions holds flags for the airlines command.
type AirlinesOptions struct {
	*RootOptions
}

// airlinesResult is the JSON payload for the airlines command.
type airlinesResult struct {
	Count    int      `json:"count"`
	Airlines []string `json:"airlines"`
}

// NewAirlinesCommand creates the airlines command.
func NewAirlinesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AirlinesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "airlines",
		Short: "List all airline names",
		Long: `List every distinct airline name in the dataset, lexicographically
ordered.

Examples:
  flightdeck airlines --db ./data/flights.sqlite3
  flightdeck airlines --db ./data/flights.sqlite3 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAirlines(opts, cmd)
		},
	}

	return cmd
}

func runAirlines(opts *AirlinesOptions, cmd *cobra.Command) error {
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

	f := newFormatter(cmd, opts.RootOptions)
	f.VerboseLog("opened dataset %s", path)

	airlines, err := st.Airlines(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list airlines", err)
	}
	f.VerboseLog("query returned %d airlines", len(airlines))

	if opts.Format == "json" {
		return outputJSON(cmd.OutOrStdout(), airlinesResult{
			Count:    len(airlines),
			Airlines: airlines,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Got %d airlines.\n", len(airlines))
	for _, name := range airlines {
		fmt.Fprintln(w, name)
	}
	return nil
}
