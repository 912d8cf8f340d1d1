package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/web"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Appearance string // "light", "dark", or "" (let the inline script decide)
	Nav        string // active nav item
	Flash      *Flash
}

// appearanceFromRequest reads the "appearance" cookie. Returns "" if absent
// or invalid so the layout omits data-theme.
func appearanceFromRequest(r *http.Request) string {
	c, err := r.Cookie(appearanceCookie)
	if err != nil {
		return ""
	}
	if c.Value == "light" || c.Value == "dark" {
		return c.Value
	}
	return ""
}

func newBasePage(r *http.Request, nav string) BasePage {
	return BasePage{Appearance: appearanceFromRequest(r), Nav: nav}
}

// renderContent turns post text into HTML, keeping its line breaks.
func renderContent(s string) template.HTML {
	out := blackfriday.Run([]byte(s),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak))
	return template.HTML(out)
}

var funcs = template.FuncMap{
	"content":    renderContent,
	"themeLabel": func(t posts.Theme) string { return t.Label() },
	"add1":       func(i int) int { return i + 1 },
	"pct":        func(f float64) string { return fmt.Sprintf("%.0f%%", f*100) },
}

// pageCache maps a page file name (e.g. "dashboard.html") to a template set
// of base.html + partials + that page, so {{define "content"}} blocks don't
// collide.
var (
	pageCache    map[string]*template.Template
	fragmentTmpl *template.Template
)

func init() {
	partials, err := fs.Glob(web.TemplateFS, "templates/partials/*.html")
	if err != nil {
		panic("glob partials: " + err.Error())
	}

	fragmentTmpl = template.Must(template.New("").Funcs(funcs).ParseFS(web.TemplateFS, partials...))

	pageCache = make(map[string]*template.Template)
	err = fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").Funcs(funcs).ParseFS(web.TemplateFS, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// Flash is a one-time notification shown above the page content.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// isHTMX returns true when the request was sent by HTMX.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render executes a full-page template (base layout + named page).
func render(w http.ResponseWriter, tmpl string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t, ok := pageCache[tmpl]
	if !ok {
		http.Error(w, "template not found: "+tmpl, http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// renderFragment executes a named template from the partials set.
func renderFragment(w http.ResponseWriter, tmpl string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fragmentTmpl.ExecuteTemplate(w, tmpl, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}
