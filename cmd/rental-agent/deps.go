package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/rental-agent/internal/db"
	"github.com/joestump/rental-agent/internal/listing"
	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

// newGenerator builds the template generator with every post counted.
func newGenerator() (*posts.Generator, error) {
	return posts.New(listing.Default(), posts.WithObserver(func(p posts.Post) {
		metrics.PostsGeneratedTotal.WithLabelValues(string(p.Theme), p.TargetCampus, p.ModelUsed).Inc()
	}))
}

// openArchive opens and migrates the archive database.
func openArchive() (*sqlx.DB, *store.PostStore, error) {
	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database, cfg.DB.Driver); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return database, store.NewPostStore(database), nil
}

// closeDB closes the database, logging any error.
func closeDB(database *sqlx.DB) {
	if err := database.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}
}

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPost writes a post's header line and content.
func printPost(w io.Writer, i int, p posts.Post) {
	fmt.Fprintf(w, "Post %d: %s · %s students · %s · %d characters\n",
		i+1, p.Theme.Label(), p.TargetCampus, p.Date, p.CharacterCount)
	fmt.Fprintln(w, p.Content)
	fmt.Fprintln(w)
}
