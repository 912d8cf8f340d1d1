package api

import (
	"log/slog"
	"net/http"

	"github.com/joestump/rental-agent/internal/posts"
)

type metaAPIHandler struct {
	deps Deps
}

func newMetaAPIHandler(deps Deps) *metaAPIHandler {
	return &metaAPIHandler{deps: deps}
}

// Themes lists the post themes.
//
// @Summary      List themes
// @Tags         Meta
// @Produce      json
// @Success      200  {array}  ThemeResponse
// @Router       /themes [get]
func (h *metaAPIHandler) Themes(w http.ResponseWriter, r *http.Request) {
	bank := h.deps.Generator.Bank()
	out := make([]ThemeResponse, 0, len(posts.Themes))
	for _, t := range posts.Themes {
		out = append(out, ThemeResponse{
			Name:              string(t),
			Label:             t.Label(),
			MainTemplates:     bank.Len(t, posts.PoolMain),
			FallbackTemplates: bank.Len(t, posts.PoolFallback),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats reports generator configuration and archive counts.
//
// @Summary      Generation statistics
// @Tags         Meta
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func (h *metaAPIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{Stats: h.deps.Generator.Stats()}
	if h.deps.Prober != nil {
		resp.Model = h.deps.Prober.Model()
	}
	if h.deps.Archive != nil {
		counts, err := h.deps.Archive.Counts(r.Context())
		if err != nil {
			slog.Warn("archive counts", "error", err)
		} else {
			resp.Saved = &counts
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Probe checks the optional Ollama server.
//
// @Summary      Ollama status
// @Description  Reports whether the Ollama server answers and which models it has. Post generation never depends on it.
// @Tags         Meta
// @Produce      json
// @Success      200  {object}  ProbeResponse
// @Router       /probe [get]
func (h *metaAPIHandler) Probe(w http.ResponseWriter, r *http.Request) {
	resp := ProbeResponse{Models: []string{}}
	if p := h.deps.Prober; p != nil {
		resp.URL = p.BaseURL()
		resp.Model = p.Model()
		if p.Reachable(r.Context()) {
			resp.Reachable = true
			if models := p.ListModels(r.Context()); models != nil {
				resp.Models = models
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
