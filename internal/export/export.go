// Package export writes posts to JSON files in an output directory.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joestump/rental-agent/internal/posts"
)

// PostFileName is the single-post dump name, e.g. facebook_post_20250314.json.
func PostFileName(now time.Time) string {
	return "facebook_post_" + now.Format("20060102") + ".json"
}

// WeekFileName is the weekly dump name, e.g. weekly_posts_20250314.json.
func WeekFileName(now time.Time) string {
	return "weekly_posts_" + now.Format("20060102") + ".json"
}

// DashboardFileName names a post saved from the dashboard. index is the
// zero-based position in the batch; the file uses index+1.
func DashboardFileName(index int, now time.Time) string {
	return fmt.Sprintf("post_%d_%s.json", index+1, now.Format("20060102_150405"))
}

// WritePost dumps one post and returns the path written.
func WritePost(dir string, p posts.Post, now time.Time) (string, error) {
	return writeJSON(filepath.Join(dir, PostFileName(now)), p)
}

// WriteWeek dumps a week of posts as a JSON array.
func WriteWeek(dir string, week []posts.Post, now time.Time) (string, error) {
	return writeJSON(filepath.Join(dir, WeekFileName(now)), week)
}

// WriteDashboardPost dumps a post saved from the dashboard batch.
func WriteDashboardPost(dir string, index int, p posts.Post, now time.Time) (string, error) {
	return writeJSON(filepath.Join(dir, DashboardFileName(index, now)), p)
}

func writeJSON(path string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
