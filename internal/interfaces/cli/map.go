package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/GeoSignal-Intelligence/pkg/client"
)

// NewMapCmd creates the map command, which fetches the overview map from a
// running API server.
func NewMapCmd(opts *RootOptions) *cobra.Command {
	var (
		dateRange     string
		scope         string
		search        string
		countries     string
		types         string
		sources       string
		minImportance int
		maxSignals    int
		userID        string
	)

	cmd := &cobra.Command{
		Use:     "map",
		Aliases: []string{"aggregate"},
		Short:   "Fetch the overview map signal set",
		Long:    "Fetch the aggregated overview map from the API server: geolocated signals,\ntop events, corporate impacts, and pipeline statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := client.NewClient(opts.ServerAddr, opts.APIKey, client.WithTimeout(opts.Timeout))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			resp, err := sdk.Overview().GetMap(ctx, client.MapQuery{
				DateRange:     dateRange,
				Scope:         scope,
				Search:        search,
				Countries:     splitList(countries),
				Types:         splitList(types),
				Sources:       splitList(sources),
				MinImportance: minImportance,
				MaxSignals:    maxSignals,
				UserID:        userID,
			})
			if err != nil {
				return fmt.Errorf("overview map request failed: %w", err)
			}

			return printMapResponse(cmd, opts, resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&dateRange, "range", "24h", "lookback window: 24h, 7d, or 30d")
	f.StringVar(&scope, "scope", "global", "aggregation scope: global or watchlist")
	f.StringVar(&search, "search", "", "free-text filter over signal labels")
	f.StringVar(&countries, "countries", "", "comma-separated country filter")
	f.StringVar(&types, "types", "", "comma-separated type filter (geopolitics, supply-chains, markets, energy, security)")
	f.StringVar(&sources, "sources", "", "comma-separated source filter")
	f.IntVar(&minImportance, "min-importance", 0, "drop signals below this importance (0-100)")
	f.IntVar(&maxSignals, "max-signals", 0, "cap the number of returned signals (0 = server default)")
	f.StringVar(&userID, "user", "", "user ID for watchlist-scoped requests")

	return cmd
}

func printMapResponse(cmd *cobra.Command, opts *RootOptions, resp *client.MapResponse) error {
	if opts.OutputFormat == "json" {
		return printJSON(cmd, resp)
	}

	out := cmd.OutOrStdout()

	if resp.IsDemo {
		fmt.Fprintln(out, color.YellowString("Demo payload: no live signals matched, showing fixtures."))
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Type", "Scope", "Importance", "Lat", "Lon", "Label"})
	for _, s := range resp.Signals {
		table.Append([]string{
			truncateCell(s.ID, 16),
			s.Type,
			s.Scope,
			colorizeImportance(s.Importance),
			fmt.Sprintf("%.2f", s.Lat),
			fmt.Sprintf("%.2f", s.Lon),
			truncateCell(s.LabelShort, 50),
		})
	}
	table.Render()

	if len(resp.TopEvents) > 0 {
		fmt.Fprintln(out, "\nTop events:")
		for i, e := range resp.TopEvents {
			fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, e.Source, e.Title)
		}
	}

	if len(resp.TopImpacts) > 0 {
		fmt.Fprintln(out, "\nCorporate impacts:")
		for _, imp := range resp.TopImpacts {
			fmt.Fprintf(out, "  - %s: %s\n", imp.Company, imp.Headline)
		}
	}

	st := resp.Stats
	fmt.Fprintf(out, "\nQueried %d, matched %d, missed %d, filtered %d, served %d (window %s)\n",
		st.TotalQueried, st.GeoMatched, st.GeoMissed, st.FilteredOut, st.FinalCount, st.EffectiveDateRange)

	return nil
}

func colorizeImportance(importance int) string {
	v := strconv.Itoa(importance)
	switch {
	case importance >= 80:
		return color.RedString(v)
	case importance >= 60:
		return color.YellowString(v)
	default:
		return v
	}
}

//Personal.AI order the ending
