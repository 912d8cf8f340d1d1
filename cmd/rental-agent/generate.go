package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/export"
	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

func newGenerateCmd() *cobra.Command {
	var (
		count  int
		theme  string
		campus string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more posts",
		Long: "Generate posts from the template bank. --theme and --campus pin the draw; " +
			"--save writes JSON files to the output directory and records them in the archive.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > 10 {
				return fmt.Errorf("--count must be between 1 and 10, got %d", count)
			}
			sel, err := posts.ParseSelection(theme, campus)
			if err != nil {
				return err
			}
			gen, err := newGenerator()
			if err != nil {
				return err
			}

			ps := gen.GenerateN(count, sel)
			var files []string
			if save {
				if files, err = savePosts(cmd, ps); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, ps)
			}
			for i, p := range ps {
				printPost(out, i, p)
			}
			for _, f := range files {
				fmt.Fprintf(out, "💾 Saved to %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of posts (1-10)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme to use (default: random)")
	cmd.Flags().StringVar(&campus, "campus", "", "campus mode: weighted, ucsb, sbcc, random")
	cmd.Flags().BoolVar(&save, "save", false, "write posts to JSON files and the archive")

	return cmd
}

// savePosts writes a single post to today's facebook_post file, or a batch to
// numbered post files, and archives each.
func savePosts(cmd *cobra.Command, ps []posts.Post) ([]string, error) {
	now := time.Now()
	files := make([]string, 0, len(ps))
	for i, p := range ps {
		var (
			path string
			err  error
		)
		if len(ps) == 1 {
			path, err = export.WritePost(cfg.OutputDir, p, now)
		} else {
			path, err = export.WriteDashboardPost(cfg.OutputDir, i, p, now)
		}
		if err != nil {
			metrics.PostSaveErrorsTotal.Inc()
			return files, err
		}
		files = append(files, path)
	}
	metrics.PostsSavedTotal.WithLabelValues(store.SourceCLI).Add(float64(len(ps)))

	database, archive, err := openArchive()
	if err != nil {
		cmd.PrintErrln("archive unavailable:", err)
		return files, nil
	}
	defer closeDB(database)
	for i, p := range ps {
		if _, err := archive.Save(cmd.Context(), p, store.SourceCLI, files[i]); err != nil {
			metrics.PostSaveErrorsTotal.Inc()
			slog.Warn("archive post", "file", files[i], "error", err)
		}
	}
	return files, nil
}
