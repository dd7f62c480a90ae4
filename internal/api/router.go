package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rajrishis/portfolio/internal/portfolioservice"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *portfolioservice.Service, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(ContentVersion(svc))

	r.Get("/profile", h.GetProfile)
	r.Get("/skills", h.ListSkills)
	r.Get("/tech", h.ListTech)

	r.Get("/projects", h.ListProjects)
	r.Get("/projects/{slug}", h.GetProject)

	r.Get("/search", h.Search)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
