package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/export"
	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/store"
)

func newWeekCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Generate a week of posts starting today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}
			week := gen.GenerateWeek()

			var path string
			if save {
				if path, err = export.WriteWeek(cfg.OutputDir, week, time.Now()); err != nil {
					metrics.PostSaveErrorsTotal.Inc()
					return err
				}
				metrics.PostsSavedTotal.WithLabelValues(store.SourceCLI).Add(float64(len(week)))

				database, archive, err := openArchive()
				if err != nil {
					cmd.PrintErrln("archive unavailable:", err)
				} else {
					defer closeDB(database)
					if err := archive.SaveAll(cmd.Context(), week, store.SourceCLI, path); err != nil {
						metrics.PostSaveErrorsTotal.Inc()
						slog.Warn("archive week", "file", path, "error", err)
					}
				}
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, week)
			}
			for i, p := range week {
				fmt.Fprintf(out, "Day %d (%s): %s - %s\n", i+1, p.Date, p.Theme.Label(), p.TargetCampus)
			}
			if path != "" {
				fmt.Fprintf(out, "\n💾 Saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the week to a JSON file and the archive")
	return cmd
}
