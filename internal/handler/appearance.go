package handler

import (
	"encoding/json"
	"net/http"
)

const appearanceCookie = "appearance"

// AppearanceHandler switches the dashboard between light and dark mode.
type AppearanceHandler struct{}

// NewAppearanceHandler creates a new AppearanceHandler.
func NewAppearanceHandler() *AppearanceHandler {
	return &AppearanceHandler{}
}

// Toggle handles POST /appearance. It sets the cookie and, for HTMX callers,
// returns an HX-Trigger so the page can swap data-theme without reloading.
func (h *AppearanceHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	mode := r.FormValue("appearance")
	if mode != "light" && mode != "dark" {
		http.Error(w, "invalid appearance", http.StatusBadRequest)
		return
	}

	// Not HttpOnly: the anti-flash script in base.html reads it.
	http.SetCookie(w, &http.Cookie{
		Name:     appearanceCookie,
		Value:    mode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})

	if !isHTMX(r) {
		http.Redirect(w, r, refererOr(r, "/"), http.StatusSeeOther)
		return
	}
	trigger, _ := json.Marshal(map[string]any{
		"appearanceChanged": map[string]string{"appearance": mode},
	})
	w.Header().Set("HX-Trigger", string(trigger))
	w.WriteHeader(http.StatusOK)
}

// refererOr returns the request's same-site Referer path, or fallback.
func refererOr(r *http.Request, fallback string) string {
	ref := r.Referer()
	if ref == "" {
		return fallback
	}
	if u, err := r.URL.Parse(ref); err == nil && (u.Host == "" || u.Host == r.Host) && u.Path != "" {
		return u.Path
	}
	return fallback
}
