package handler

import (
	"context"
	"net/http"
)

// Prober is the subset of the Ollama client the dashboard needs.
type Prober interface {
	Reachable(ctx context.Context) bool
	ListModels(ctx context.Context) []string
	BaseURL() string
	Model() string
}

// ProbeStatus is the template data for the Ollama status badge.
type ProbeStatus struct {
	Reachable bool
	URL       string
	Model     string
	Models    []string
}

// StatusHandler reports service health and Ollama reachability.
type StatusHandler struct {
	prober Prober
}

// NewStatusHandler creates a new StatusHandler. prober may be nil.
func NewStatusHandler(prober Prober) *StatusHandler {
	return &StatusHandler{prober: prober}
}

// Healthz handles GET /healthz.
func (h *StatusHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Probe handles GET /status, rendering the Ollama badge fragment. Generation
// never depends on the result.
func (h *StatusHandler) Probe(w http.ResponseWriter, r *http.Request) {
	var st ProbeStatus
	if h.prober != nil {
		st.URL = h.prober.BaseURL()
		st.Model = h.prober.Model()
		if h.prober.Reachable(r.Context()) {
			st.Reachable = true
			st.Models = h.prober.ListModels(r.Context())
		}
	}
	renderFragment(w, "probe_status", st)
}
