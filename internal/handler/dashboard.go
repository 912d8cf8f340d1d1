package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/rental-agent/internal/export"
	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

const (
	minBatch     = 1
	maxBatch     = 10
	defaultBatch = 3
)

// Archive records saved posts.
type Archive interface {
	Save(ctx context.Context, p posts.Post, source, filePath string) (*store.SavedPost, error)
	List(ctx context.Context, limit int) ([]*store.SavedPost, error)
	Counts(ctx context.Context) (store.Counts, error)
}

// PostView is one post card.
type PostView struct {
	Index   int
	Post    posts.Post
	HTML    template.HTML
	SavedTo string
}

// ThemeOption is one entry in the theme select.
type ThemeOption struct {
	Value string
	Label string
}

// DashboardPage is the template data for the dashboard view.
type DashboardPage struct {
	BasePage
	CampusModes []CampusModeOption
	Themes      []ThemeOption
	Selected    posts.Selection
	Count       int
	Posts       []PostView
	Stats       posts.Stats
	Model       string
}

// CampusModeOption is one entry in the campus preference select.
type CampusModeOption struct {
	Value string
	Label string
}

// DashboardHandler serves the post generation dashboard.
type DashboardHandler struct {
	gen       *posts.Generator
	batch     batch
	archive   Archive
	outputDir string
	model     string
	now       func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(deps Deps) *DashboardHandler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	model := ""
	if deps.Prober != nil {
		model = deps.Prober.Model()
	}
	return &DashboardHandler{
		gen:       deps.Generator,
		batch:     batch{sm: deps.SessionManager},
		archive:   deps.Archive,
		outputDir: deps.OutputDir,
		model:     model,
		now:       now,
	}
}

func campusModeOptions() []CampusModeOption {
	out := make([]CampusModeOption, 0, len(posts.CampusModes))
	for _, m := range posts.CampusModes {
		value := string(m.Mode)
		if value == "" {
			value = "weighted"
		}
		out = append(out, CampusModeOption{Value: value, Label: m.Label})
	}
	return out
}

func themeOptions() []ThemeOption {
	out := []ThemeOption{{Value: "random", Label: "Random"}}
	for _, t := range posts.Themes {
		out = append(out, ThemeOption{Value: string(t), Label: t.Label()})
	}
	return out
}

func views(ps []posts.Post) []PostView {
	out := make([]PostView, len(ps))
	for i, p := range ps {
		out[i] = PostView{Index: i, Post: p, HTML: renderContent(p.Content)}
	}
	return out
}

// Show handles GET /.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ps := h.batch.posts(ctx)
	base := newBasePage(r, "dashboard")
	base.Flash = h.batch.popFlash(ctx)

	count := len(ps)
	if count == 0 {
		count = defaultBatch
	}
	render(w, "dashboard.html", DashboardPage{
		BasePage:    base,
		CampusModes: campusModeOptions(),
		Themes:      themeOptions(),
		Selected:    h.batch.selection(ctx),
		Count:       count,
		Posts:       views(ps),
		Stats:       h.gen.Stats(),
		Model:       h.model,
	})
}

// Generate handles POST /generate: a fresh batch replaces the session's.
func (h *DashboardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	sel, err := posts.ParseSelection(r.FormValue("theme"), r.FormValue("campus"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	count := parseBatchSize(r.FormValue("count"))

	ps := h.gen.GenerateN(count, sel)
	h.batch.put(r.Context(), ps, sel)
	slog.Info("generated batch", "count", count, "theme", sel.Theme, "campus_mode", sel.Campus)

	if isHTMX(r) {
		renderFragment(w, "batch", views(ps))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Regenerate handles POST /posts/{index}/regenerate, replacing one post with
// a new draw under the batch's selection.
func (h *DashboardHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ps := h.batch.posts(ctx)
	i, ok := postIndex(r, len(ps))
	if !ok {
		http.Error(w, "no such post", http.StatusNotFound)
		return
	}

	sel := h.batch.selection(ctx)
	next := append([]posts.Post(nil), ps...)
	next[i] = h.gen.GenerateWith(sel)
	h.batch.put(ctx, next, sel)

	if isHTMX(r) {
		renderFragment(w, "post_card", PostView{Index: i, Post: next[i], HTML: renderContent(next[i].Content)})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Save handles POST /posts/{index}/save: the post is dumped to a JSON file
// and recorded in the archive.
func (h *DashboardHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ps := h.batch.posts(ctx)
	i, ok := postIndex(r, len(ps))
	if !ok {
		http.Error(w, "no such post", http.StatusNotFound)
		return
	}

	p := ps[i]
	path, err := export.WriteDashboardPost(h.outputDir, i, p, h.now())
	if err != nil {
		metrics.PostSaveErrorsTotal.Inc()
		slog.Error("save dashboard post", "index", i, "error", err)
		h.respondFlash(w, r, Flash{Type: "error", Message: "Could not save post: " + err.Error()}, http.StatusInternalServerError)
		return
	}
	metrics.PostsSavedTotal.WithLabelValues(store.SourceDashboard).Inc()

	if h.archive != nil {
		if _, err := h.archive.Save(ctx, p, store.SourceDashboard, path); err != nil {
			metrics.PostSaveErrorsTotal.Inc()
			slog.Warn("archive dashboard post", "file", path, "error", err)
		}
	}
	h.respondFlash(w, r, Flash{Type: "success", Message: "Post saved to " + path}, http.StatusOK)
}

func (h *DashboardHandler) respondFlash(w http.ResponseWriter, r *http.Request, f Flash, status int) {
	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := fragmentTmpl.ExecuteTemplate(w, "flash", f); err != nil {
			slog.Error("render flash", "error", err)
		}
		return
	}
	h.batch.flash(r.Context(), f)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// WeekPage is the template data for the weekly preview.
type WeekPage struct {
	BasePage
	Posts []PostView
}

// Week handles GET /week with a fresh seven-day schedule.
func (h *DashboardHandler) Week(w http.ResponseWriter, r *http.Request) {
	render(w, "week.html", WeekPage{
		BasePage: newBasePage(r, "week"),
		Posts:    views(h.gen.GenerateWeek()),
	})
}

// AnalysisPage is the template data for the theme analysis view.
type AnalysisPage struct {
	BasePage
	Samples []PostView
}

// Analysis handles GET /analysis: one sample post per theme.
func (h *DashboardHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	samples := make([]posts.Post, 0, len(posts.Themes))
	for _, t := range posts.Themes {
		samples = append(samples, h.gen.GenerateWith(posts.Selection{Theme: t}))
	}
	render(w, "analysis.html", AnalysisPage{
		BasePage: newBasePage(r, "analysis"),
		Samples:  views(samples),
	})
}

// SavedPage is the template data for the archive view.
type SavedPage struct {
	BasePage
	Saved  []*store.SavedPost
	Counts store.Counts
}

// Saved handles GET /saved.
func (h *DashboardHandler) Saved(w http.ResponseWriter, r *http.Request) {
	data := SavedPage{BasePage: newBasePage(r, "saved")}
	if h.archive != nil {
		var err error
		if data.Saved, err = h.archive.List(r.Context(), 50); err != nil {
			http.Error(w, "could not load saved posts", http.StatusInternalServerError)
			return
		}
		if data.Counts, err = h.archive.Counts(r.Context()); err != nil {
			http.Error(w, "could not load saved post counts", http.StatusInternalServerError)
			return
		}
	}
	render(w, "saved.html", data)
}

// parseBatchSize clamps the requested count to 1..10, defaulting to 3.
func parseBatchSize(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return defaultBatch
	}
	return max(minBatch, min(maxBatch, n))
}

func postIndex(r *http.Request, n int) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
