package api

import (
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

// GenerateRequest is the request body for POST /api/v1/posts.
type GenerateRequest struct {
	Count  int    `json:"count,omitempty"`  // 1..10, default 1
	Theme  string `json:"theme,omitempty"`  // snake_case or label; empty or "random" for any
	Campus string `json:"campus,omitempty"` // weighted (default), ucsb, sbcc, random
	Save   bool   `json:"save,omitempty"`   // also write JSON files and archive
}

// PostListResponse wraps generated posts.
type PostListResponse struct {
	Posts []posts.Post `json:"posts"`
	Files []string     `json:"files,omitempty"`
}

// ThemeResponse describes one theme.
type ThemeResponse struct {
	Name              string `json:"name"`
	Label             string `json:"label"`
	MainTemplates     int    `json:"main_templates"`
	FallbackTemplates int    `json:"fallback_templates"`
}

// ProbeResponse reports Ollama reachability.
type ProbeResponse struct {
	Reachable bool     `json:"reachable"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Models    []string `json:"models"`
}

// StatsResponse is the JSON shape for GET /api/v1/stats.
type StatsResponse struct {
	posts.Stats
	Model string        `json:"model"`
	Saved *store.Counts `json:"saved,omitempty"`
}

// SavedListResponse is the JSON shape for GET /api/v1/saved.
type SavedListResponse struct {
	Saved []*store.SavedPost `json:"saved"`
}
