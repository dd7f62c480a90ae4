package api

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rajrishis/portfolio/internal/checksum"
	"github.com/rajrishis/portfolio/internal/state"
	"github.com/rajrishis/portfolio/internal/view"
)

// PageHandler renders the portfolio page. Each request mounts its own view,
// so no presentation state is shared between requests.
type PageHandler struct {
	content  view.Content
	renderer *view.Renderer
	opts     view.Options
}

// NewPageHandler creates a page handler.
func NewPageHandler(content view.Content, renderer *view.Renderer, opts view.Options) *PageHandler {
	return &PageHandler{content: content, renderer: renderer, opts: opts}
}

// ServeHTTP handles GET /. The query parameter theme=light starts the page
// in light mode.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bus := state.NewBus()
	defer bus.Close()

	v, err := view.Mount(bus, h.renderer, h.content, h.opts)
	if err != nil {
		slog.Error("mount view failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer v.Close()

	if r.URL.Query().Get("theme") == "light" {
		v.State().ToggleTheme()
	}

	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		slog.Error("render page failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	etag := `"` + checksum.Sum(buf.Bytes()) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// NewSiteRouter mounts the page, its client script and the content assets.
// assets may be nil when no content directory is configured.
func NewSiteRouter(page *PageHandler, assets *AssetHandler, static fs.FS) chi.Router {
	r := chi.NewRouter()
	r.Use(ContentVersion(page.content))

	r.Get("/", page.ServeHTTP)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	if assets != nil {
		r.Get("/assets/{filename}", assets.ServeFile)
	}
	return r
}
