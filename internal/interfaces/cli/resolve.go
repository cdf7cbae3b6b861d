package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/geo"
)

// resolvedPlace is the JSON shape for one resolution.
type resolvedPlace struct {
	Query string  `json:"query"`
	Found bool    `json:"found"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
	Label string  `json:"label,omitempty"`
}

// NewResolveCmd creates the resolve command.  Resolution runs offline
// against the embedded gazetteer; no server is contacted.
func NewResolveCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <place> [place...]",
		Short: "Resolve place names to map coordinates",
		Long:  "Resolve one or more free-text place names (countries, regions, cities,\nchokepoints) to coordinates using the embedded offline gazetteer.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, args)
		},
	}
}

func runResolve(cmd *cobra.Command, opts *RootOptions, args []string) error {
	resolver := geo.NewStaticResolver()

	results := make([]resolvedPlace, 0, len(args))
	misses := 0
	for _, arg := range args {
		place := resolvedPlace{Query: arg}
		if point := resolver.Resolve([]string{arg}); point != nil {
			place.Found = true
			place.Lat = point.Lat
			place.Lon = point.Lon
			place.Label = point.Label
		} else {
			misses++
		}
		results = append(results, place)
	}

	if strings.EqualFold(opts.OutputFormat, "json") {
		if err := printJSON(cmd, results); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Query", "Lat", "Lon", "Label"})
		for _, p := range results {
			if !p.Found {
				table.Append([]string{p.Query, "-", "-", "(no match)"})
				continue
			}
			table.Append([]string{
				p.Query,
				fmt.Sprintf("%.2f", p.Lat),
				fmt.Sprintf("%.2f", p.Lon),
				p.Label,
			})
		}
		table.Render()
	}

	if misses == len(args) {
		return fmt.Errorf("no coordinates found for any of the %d place(s)", len(args))
	}
	return nil
}

//Personal.AI order the ending
