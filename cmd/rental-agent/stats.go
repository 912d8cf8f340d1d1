package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show template bank and archive statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}
			st := gen.Stats()

			var counts *store.Counts
			if database, archive, err := openArchive(); err != nil {
				cmd.PrintErrln("archive unavailable:", err)
			} else {
				defer closeDB(database)
				c, err := archive.Counts(cmd.Context())
				if err != nil {
					return err
				}
				counts = &c
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, struct {
					Bank  posts.Stats   `json:"bank"`
					Saved *store.Counts `json:"saved,omitempty"`
				}{st, counts})
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Themes\t%d\n", len(st.Themes))
			for _, c := range st.Campuses {
				fmt.Fprintf(w, "Campus %s\t%.0f%%\n", c.Campus, c.Weight*100)
			}
			fmt.Fprintf(w, "Features\t%d\n", st.Features)
			fmt.Fprintf(w, "Amenities\t%d\n", st.Amenities)
			fmt.Fprintf(w, "Templates\t%d main, %d fallback\n", st.MainTemplates, st.FallbackTemplates)
			switch {
			case st.Pricing != nil && st.Pricing.Consistent:
				fmt.Fprintf(w, "Due at signing\t%s (adds up)\n", st.Pricing.Authored)
			case st.Pricing != nil:
				fmt.Fprintf(w, "Due at signing\t%s listed, %s computed\n", st.Pricing.Authored, st.Pricing.Computed)
			case st.PricingError != "":
				fmt.Fprintf(w, "Due at signing\tunparseable: %s\n", st.PricingError)
			}
			if counts != nil {
				fmt.Fprintf(w, "Saved posts\t%d\n", counts.Total)
				for theme, n := range counts.ByTheme {
					fmt.Fprintf(w, "  %s\t%d\n", theme, n)
				}
			}
			return w.Flush()
		},
	}
}
