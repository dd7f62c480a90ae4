package portfolioservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rajrishis/portfolio/internal/apperr"
	"github.com/rajrishis/portfolio/internal/index"
	"github.com/rajrishis/portfolio/internal/models"
)

// Content supplies the current content snapshot.
type Content interface {
	Snapshot() *models.Portfolio
}

// Service answers queries over the current content snapshot, using the
// search index for text search and technology filters.
type Service struct {
	content Content
	idx     index.ContentIndex
	logger  *slog.Logger

	mu sync.Mutex // serialises index rebuilds
}

// NewService creates a new portfolio service.
func NewService(c Content, idx index.ContentIndex, logger *slog.Logger) *Service {
	return &Service{content: c, idx: idx, logger: logger}
}

// Snapshot returns the current content snapshot.
func (s *Service) Snapshot() *models.Portfolio {
	return s.content.Snapshot()
}

// Profile returns the hero, contact and footer texts.
func (s *Service) Profile(_ context.Context) models.Profile {
	return s.content.Snapshot().Profile
}

// Skills returns the skill labels in display order.
func (s *Service) Skills(_ context.Context) []string {
	return nonNilSlice(s.content.Snapshot().Skills)
}

// ListProjects returns projects in display order. A non-empty tech keeps only
// projects using that technology, compared case-insensitively.
func (s *Service) ListProjects(ctx context.Context, tech string) ([]models.Project, error) {
	tech = strings.TrimSpace(tech)
	if tech == "" {
		return s.content.Snapshot().Projects, nil
	}
	p, err := s.ensureFresh(ctx)
	if err != nil {
		return nil, err
	}
	slugs, err := s.idx.ProjectsByTech(tech)
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0, len(slugs))
	for _, slug := range slugs {
		if pr, ok := p.ProjectBySlug(slug); ok {
			out = append(out, pr)
		}
	}
	return out, nil
}

// GetProject returns the project with the given slug.
func (s *Service) GetProject(_ context.Context, slug string) (*models.Project, error) {
	pr, ok := s.content.Snapshot().ProjectBySlug(slug)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &pr, nil
}

// Search delegates text search to the index.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]index.SearchResult, error) {
	if _, err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	res, err := s.idx.Search(query, limit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(res), nil
}

// TechCounts returns every technology with the number of projects using it.
func (s *Service) TechCounts(ctx context.Context) ([]index.TechCount, error) {
	if _, err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	res, err := s.idx.TechCounts()
	if err != nil {
		return nil, err
	}
	return nonNilSlice(res), nil
}

// Reindex rebuilds the index from the current snapshot.
func (s *Service) Reindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuild(s.content.Snapshot())
}

// ensureFresh rebuilds the index when it lags behind the store and returns
// the snapshot the index now reflects. The snapshot is read under the lock,
// so a request that started on an older snapshot never rolls the index back.
func (s *Service) ensureFresh(ctx context.Context) (*models.Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.content.Snapshot()
	v, err := s.idx.Version()
	if err != nil {
		return nil, err
	}
	if v == p.Version {
		return p, nil
	}
	if err := s.rebuild(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) rebuild(p *models.Portfolio) error {
	if err := s.idx.Rebuild(p); err != nil {
		return fmt.Errorf("portfolioservice: reindex: %w", err)
	}
	s.logger.Info("index rebuilt", "version", p.Version, "projects", len(p.Projects), "skills", len(p.Skills))
	return nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
