package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

// Prober is the subset of the Ollama client the API needs.
type Prober interface {
	Reachable(ctx context.Context) bool
	ListModels(ctx context.Context) []string
	BaseURL() string
	Model() string
}

// Archive is the saved-post store.
type Archive interface {
	Save(ctx context.Context, p posts.Post, source, filePath string) (*store.SavedPost, error)
	List(ctx context.Context, limit int) ([]*store.SavedPost, error)
	Counts(ctx context.Context) (store.Counts, error)
}

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Generator *posts.Generator
	Prober    Prober  // optional
	Archive   Archive // optional
	OutputDir string
	Now       func() time.Time
}

// NewAPIRouter creates a chi sub-router for /api/v1. All routes return
// application/json.
func NewAPIRouter(deps Deps) chi.Router {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	r := chi.NewRouter()
	r.Use(jsonContentType)

	postsH := newPostsAPIHandler(deps)
	r.Post("/posts", postsH.Create)
	r.Get("/posts/week", postsH.Week)
	r.Get("/saved", postsH.ListSaved)

	meta := newMetaAPIHandler(deps)
	r.Get("/themes", meta.Themes)
	r.Get("/stats", meta.Stats)
	r.Get("/probe", meta.Probe)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	})
	return r
}

// jsonContentType sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
