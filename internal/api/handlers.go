package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rajrishis/portfolio/internal/apperr"
	"github.com/rajrishis/portfolio/internal/portfolioservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *portfolioservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *portfolioservice.Service) *Handler {
	return &Handler{svc: svc}
}

// GetProfile handles GET /api/profile.
//
//	@Summary		Get the owner profile
//	@Tags			portfolio
//	@Produce		json
//	@Success		200	{object}	Profile
//	@Router			/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Profile(r.Context()))
}

// ListProjects handles GET /api/projects.
//
//	@Summary		List projects in display order
//	@Tags			projects
//	@Produce		json
//	@Param			tech	query		string	false	"Filter by technology (case-insensitive)"
//	@Success		200		{object}	ProjectListResponse
//	@Router			/projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	tech := r.URL.Query().Get("tech")
	projects, err := h.svc.ListProjects(r.Context(), tech)
	if err != nil {
		slog.Error("list projects failed", slog.String("tech", tech), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ProjectListResponse{
		Projects: projects,
		Total:    len(projects),
	})
}

// GetProject handles GET /api/projects/{slug}.
//
//	@Summary		Get a single project by slug
//	@Tags			projects
//	@Produce		json
//	@Param			slug	path		string	true	"Project slug"
//	@Success		200		{object}	Project
//	@Failure		404		{object}	errResponse
//	@Router			/projects/{slug} [get]
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	project, err := h.svc.GetProject(r.Context(), slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get project failed", slog.String("slug", slug), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ListSkills handles GET /api/skills.
//
//	@Summary		List skills in display order
//	@Tags			portfolio
//	@Produce		json
//	@Success		200	{object}	SkillsResponse
//	@Router			/skills [get]
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SkillsResponse{Skills: h.svc.Skills(r.Context())})
}

// ListTech handles GET /api/tech.
//
//	@Summary		List technologies with project counts
//	@Tags			projects
//	@Produce		json
//	@Success		200	{object}	TechResponse
//	@Router			/tech [get]
func (h *Handler) ListTech(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.TechCounts(r.Context())
	if err != nil {
		slog.Error("tech counts failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, TechResponse{Tech: toTechCounts(counts)})
}

// Search handles GET /api/search.
//
//	@Summary		Search projects and skills
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("q is required"))
		return
	}
	results, err := h.svc.Search(r.Context(), q, queryLimit(r))
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Query: q, Results: toSearchResults(results)})
}
