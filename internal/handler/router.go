// Package handler serves the browser dashboard.
package handler

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/rental-agent/docs/swagger"
	"github.com/joestump/rental-agent/internal/api"
	"github.com/joestump/rental-agent/internal/logging"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Generator      *posts.Generator
	Prober         Prober  // optional
	Archive        Archive // optional
	OutputDir      string
	Now            func() time.Time
}

// NewRouter assembles the chi router with middleware, dashboard pages, the
// JSON API and operational endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)

	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	status := NewStatusHandler(deps.Prober)
	r.Get("/healthz", status.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI; no session needed.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Generator: deps.Generator,
		Prober:    deps.Prober,
		Archive:   deps.Archive,
		OutputDir: deps.OutputDir,
		Now:       deps.Now,
	}))

	dashboard := NewDashboardHandler(deps)
	appearance := NewAppearanceHandler()
	r.Group(func(r chi.Router) {
		r.Use(deps.SessionManager.LoadAndSave)

		r.Get("/", dashboard.Show)
		r.Post("/generate", dashboard.Generate)
		r.Post("/posts/{index}/regenerate", dashboard.Regenerate)
		r.Post("/posts/{index}/save", dashboard.Save)
		r.Get("/week", dashboard.Week)
		r.Get("/analysis", dashboard.Analysis)
		r.Get("/saved", dashboard.Saved)
		r.Get("/status", status.Probe)
		r.Post("/appearance", appearance.Toggle)
	})

	return r
}
