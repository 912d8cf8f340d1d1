package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joestump/rental-agent/internal/api"
	"github.com/joestump/rental-agent/internal/listing"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
	"github.com/joestump/rental-agent/internal/testutil"
)

type fakeProber struct {
	up bool
}

func (f fakeProber) Reachable(context.Context) bool { return f.up }
func (f fakeProber) ListModels(context.Context) []string {
	if !f.up {
		return nil
	}
	return []string{"tinyllama:latest"}
}
func (f fakeProber) BaseURL() string { return "http://localhost:11434" }
func (f fakeProber) Model() string   { return "tinyllama:latest" }

type testEnv struct {
	Router  http.Handler
	Archive *store.PostStore
	Dir     string
}

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.Local)

func newTestEnv(t *testing.T, up bool) *testEnv {
	t.Helper()
	gen, err := posts.New(listing.Default(), posts.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("posts.New: %v", err)
	}
	archive := store.NewPostStore(testutil.NewTestDB(t))
	dir := t.TempDir()
	return &testEnv{
		Router: api.NewAPIRouter(api.Deps{
			Generator: gen,
			Prober:    fakeProber{up: up},
			Archive:   archive,
			OutputDir: dir,
			Now:       func() time.Time { return fixedNow },
		}),
		Archive: archive,
		Dir:     dir,
	}
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestCreatePostsDefault(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/posts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	resp := decode[api.PostListResponse](t, rec)
	if len(resp.Posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(resp.Posts))
	}
	if resp.Posts[0].Date != "2025-03-14" || resp.Posts[0].CreativeStyle != "clean" {
		t.Errorf("post = %+v", resp.Posts[0])
	}
}

func TestCreatePostsForced(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/posts", `{"count":5,"theme":"Beach Lifestyle","campus":"sbcc"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	resp := decode[api.PostListResponse](t, rec)
	if len(resp.Posts) != 5 {
		t.Fatalf("len(posts) = %d", len(resp.Posts))
	}
	for _, p := range resp.Posts {
		if p.Theme != posts.BeachLifestyle || p.TargetCampus != "SBCC" {
			t.Errorf("post = %s/%s", p.Theme, p.TargetCampus)
		}
	}
}

func TestCreatePostsValidation(t *testing.T) {
	env := newTestEnv(t, false)

	tests := []struct {
		name string
		body string
	}{
		{"count too high", `{"count":11}`},
		{"negative count", `{"count":-1}`},
		{"unknown theme", `{"theme":"nightlife"}`},
		{"unknown campus", `{"campus":"UCLA"}`},
		{"bad json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/posts", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decode[api.ErrorResponse](t, rec)
			if body.Code != "BAD_REQUEST" || body.Error == "" {
				t.Errorf("error body = %+v", body)
			}
		})
	}
}

func TestCreatePostsSave(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/posts", `{"count":2,"save":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	resp := decode[api.PostListResponse](t, rec)
	if len(resp.Files) != 2 || !strings.HasSuffix(resp.Files[1], "post_2_20250314_150926.json") {
		t.Fatalf("files = %v", resp.Files)
	}
	for _, f := range resp.Files {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("stat %s: %v", f, err)
		}
	}

	rec = env.do(t, http.MethodGet, "/saved", "")
	saved := decode[api.SavedListResponse](t, rec)
	if len(saved.Saved) != 2 || saved.Saved[0].Source != store.SourceAPI {
		t.Errorf("saved = %+v", saved.Saved)
	}
}

func TestWeek(t *testing.T) {
	env := newTestEnv(t, false)

	resp := decode[api.PostListResponse](t, env.do(t, http.MethodGet, "/posts/week", ""))
	if len(resp.Posts) != 7 {
		t.Fatalf("len(posts) = %d, want 7", len(resp.Posts))
	}
	if resp.Posts[0].Date != "2025-03-14" || resp.Posts[6].Date != "2025-03-20" {
		t.Errorf("dates = %s..%s", resp.Posts[0].Date, resp.Posts[6].Date)
	}
}

func TestThemes(t *testing.T) {
	env := newTestEnv(t, false)

	themes := decode[[]api.ThemeResponse](t, env.do(t, http.MethodGet, "/themes", ""))
	if len(themes) != 7 {
		t.Fatalf("len = %d, want 7", len(themes))
	}
	if themes[0].Name != "campus_proximity" || themes[0].Label != "Campus Proximity" {
		t.Errorf("themes[0] = %+v", themes[0])
	}
	if themes[0].MainTemplates != 5 || themes[0].FallbackTemplates != 3 {
		t.Errorf("template counts = %d/%d", themes[0].MainTemplates, themes[0].FallbackTemplates)
	}
}

func TestStats(t *testing.T) {
	env := newTestEnv(t, true)
	if _, err := env.Archive.Save(context.Background(), posts.Post{Theme: posts.Convenience, TargetCampus: "UCSB", ModelUsed: "template"}, store.SourceCLI, ""); err != nil {
		t.Fatal(err)
	}

	resp := decode[api.StatsResponse](t, env.do(t, http.MethodGet, "/stats", ""))
	if len(resp.Themes) != 7 || resp.MainTemplates != 35 {
		t.Errorf("stats = %+v", resp.Stats)
	}
	if resp.Model != "tinyllama:latest" {
		t.Errorf("Model = %q", resp.Model)
	}
	if resp.Saved == nil || resp.Saved.Total != 1 {
		t.Errorf("Saved = %+v", resp.Saved)
	}
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name   string
		up     bool
		models int
	}{
		{"reachable", true, 1},
		{"unreachable", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.up)
			resp := decode[api.ProbeResponse](t, env.do(t, http.MethodGet, "/probe", ""))
			if resp.Reachable != tt.up || len(resp.Models) != tt.models {
				t.Errorf("probe = %+v", resp)
			}
			if resp.URL != "http://localhost:11434" {
				t.Errorf("URL = %q", resp.URL)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodGet, "/links", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decode[api.ErrorResponse](t, rec); body.Code != "NOT_FOUND" {
		t.Errorf("code = %q", body.Code)
	}
}
