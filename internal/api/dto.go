package api

import (
	"github.com/rajrishis/portfolio/internal/index"
	"github.com/rajrishis/portfolio/internal/models"
)

// Project is a single portfolio project (aliased from the domain layer).
type Project = models.Project

// Profile holds the owner's texts and links (aliased from the domain layer).
type Profile = models.Profile

// ProjectListResponse wraps project listings.
type ProjectListResponse struct {
	Projects []Project `json:"projects" validate:"required"`
	Total    int       `json:"total" example:"6" validate:"required"`
}

// SkillsResponse wraps the skill labels in display order.
type SkillsResponse struct {
	Skills []string `json:"skills" example:"Go,SQL" validate:"required"`
}

// TechCount is a technology with the number of projects using it.
type TechCount struct {
	Tech     string `json:"tech" example:"React" validate:"required"`
	Projects int    `json:"projects" example:"3" validate:"required"`
}

// TechResponse wraps technology counts.
type TechResponse struct {
	Tech []TechCount `json:"tech" validate:"required"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Kind    string `json:"kind" example:"project" validate:"required"`
	Slug    string `json:"slug,omitempty" example:"ai-chat"`
	Title   string `json:"title" example:"AI Chat Application" validate:"required"`
	Snippet string `json:"snippet" example:"...matched text..." validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Query   string         `json:"query" example:"react" validate:"required"`
	Results []SearchResult `json:"results" validate:"required"`
}

func toSearchResults(in []index.SearchResult) []SearchResult {
	out := make([]SearchResult, len(in))
	for i, r := range in {
		out[i] = SearchResult{Kind: r.Kind, Slug: r.Slug, Title: r.Title, Snippet: r.Snippet}
	}
	return out
}

func toTechCounts(in []index.TechCount) []TechCount {
	out := make([]TechCount, len(in))
	for i, c := range in {
		out[i] = TechCount{Tech: c.Tech, Projects: c.Projects}
	}
	return out
}
