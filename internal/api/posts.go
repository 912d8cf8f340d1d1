package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/joestump/rental-agent/internal/export"
	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

const maxGenerate = 10

type postsAPIHandler struct {
	deps Deps
}

func newPostsAPIHandler(deps Deps) *postsAPIHandler {
	return &postsAPIHandler{deps: deps}
}

// Create generates posts.
//
// @Summary      Generate posts
// @Description  Generates 1-10 posts. Theme and campus may be forced; save also writes JSON files and archives them.
// @Tags         Posts
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateRequest  false  "Generation options"
// @Success      200   {object}  PostListResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /posts [post]
func (h *postsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 1 || req.Count > maxGenerate {
		writeError(w, http.StatusBadRequest, "count must be between 1 and 10", "BAD_REQUEST")
		return
	}
	sel, err := posts.ParseSelection(req.Theme, req.Campus)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	resp := PostListResponse{Posts: h.deps.Generator.GenerateN(req.Count, sel)}
	if req.Save {
		now := h.deps.Now()
		for i, p := range resp.Posts {
			path, err := export.WriteDashboardPost(h.deps.OutputDir, i, p, now)
			if err != nil {
				metrics.PostSaveErrorsTotal.Inc()
				slog.Error("save api post", "index", i, "error", err)
				writeError(w, http.StatusInternalServerError, "could not save posts", "INTERNAL_ERROR")
				return
			}
			metrics.PostsSavedTotal.WithLabelValues(store.SourceAPI).Inc()
			resp.Files = append(resp.Files, path)
			if h.deps.Archive != nil {
				if _, err := h.deps.Archive.Save(r.Context(), p, store.SourceAPI, path); err != nil {
					metrics.PostSaveErrorsTotal.Inc()
					slog.Warn("archive api post", "file", path, "error", err)
				}
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Week generates a seven-day schedule.
//
// @Summary      Weekly schedule
// @Description  Generates seven posts dated today through today+6.
// @Tags         Posts
// @Produce      json
// @Success      200  {object}  PostListResponse
// @Router       /posts/week [get]
func (h *postsAPIHandler) Week(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PostListResponse{Posts: h.deps.Generator.GenerateWeek()})
}

// ListSaved returns archived posts, newest first.
//
// @Summary      List saved posts
// @Description  Returns up to limit archived posts, newest first.
// @Tags         Archive
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows (default 50, max 200)"
// @Success      200    {object}  SavedListResponse
// @Failure      503    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /saved [get]
func (h *postsAPIHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	if h.deps.Archive == nil {
		writeError(w, http.StatusServiceUnavailable, "archive is not configured", "UNAVAILABLE")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	saved, err := h.deps.Archive.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if saved == nil {
		saved = []*store.SavedPost{}
	}
	writeJSON(w, http.StatusOK, SavedListResponse{Saved: saved})
}
