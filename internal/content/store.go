// Package content owns the portfolio content: the built-in profile, projects
// and skills, optionally overridden by a content directory.
package content

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rajrishis/portfolio/internal/checksum"
	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/parser"
	"github.com/rajrishis/portfolio/internal/storage"
)

// Layout of a content directory.
const (
	SiteFile    = "site.yaml"
	ProjectsDir = "projects"
	AssetsDir   = "assets"
)

// Store publishes immutable portfolio snapshots. Snapshot is safe for
// concurrent use; Load swaps the snapshot atomically.
type Store struct {
	fs     storage.Provider
	logger *slog.Logger
	cur    atomic.Pointer[models.Portfolio]
}

// NewStore creates a store serving the built-in content. When fs is non-nil
// the directory is loaded immediately.
func NewStore(fs storage.Provider, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{fs: fs, logger: logger}
	s.cur.Store(Builtin())
	if fs == nil {
		return s, nil
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the current content.
func (s *Store) Snapshot() *models.Portfolio {
	return s.cur.Load()
}

// Provider returns the content directory, or nil for built-in content.
func (s *Store) Provider() storage.Provider {
	return s.fs
}

// Load re-reads the content directory and publishes a new snapshot. On error
// the previous snapshot stays current.
func (s *Store) Load() error {
	if s.fs == nil {
		return nil
	}
	p, err := readDir(s.fs)
	if err != nil {
		return err
	}
	if err := Validate(p); err != nil {
		return err
	}
	prev := s.cur.Swap(p)
	if prev == nil || prev.Version != p.Version {
		s.logger.Info("content loaded",
			slog.String("source", p.Source),
			slog.String("version", p.Version),
			slog.Int("projects", len(p.Projects)),
			slog.Int("skills", len(p.Skills)))
	}
	return nil
}

func readDir(fs storage.Provider) (*models.Portfolio, error) {
	builtin := Builtin()
	p := &models.Portfolio{
		Profile:  builtin.Profile,
		Projects: builtin.Projects,
		Skills:   builtin.Skills,
		Source:   fs.Root(),
	}
	var parts [][]byte

	site, err := fs.Read(SiteFile)
	switch {
	case err == nil:
		sf, err := parser.ParseSite(site)
		if err != nil {
			return nil, err
		}
		p.Profile = mergeProfile(p.Profile, sf.Profile)
		if len(sf.Skills) > 0 {
			p.Skills = sf.Skills
		}
		parts = append(parts, []byte(SiteFile), site)
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("content: %w", err)
	}

	metas, err := fs.List(ProjectsDir, ".md")
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if len(metas) > 0 {
		parsed := make([]*parser.Project, 0, len(metas))
		for _, m := range metas {
			data, err := fs.Read(m.Path)
			if err != nil {
				return nil, fmt.Errorf("content: %w", err)
			}
			pr, err := parser.ParseProject(m.Path, data)
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, pr)
			parts = append(parts, []byte(m.Path), data)
		}
		// metas are sorted by path, so equal orders keep filename order.
		sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].Order < parsed[j].Order })
		p.Projects = make([]models.Project, len(parsed))
		for i, pr := range parsed {
			p.Projects[i] = pr.Project
		}
	}

	if len(parts) == 0 {
		p.Version = BuiltinVersion
	} else {
		p.Version = checksum.SumAll(parts...)
	}
	return p, nil
}

// mergeProfile overlays the fields set in over onto base. Empty fields keep
// the base value, so a site file may carry only the fields it changes.
func mergeProfile(base, over models.Profile) models.Profile {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&base.Handle, over.Handle},
		{&base.Name, over.Name},
		{&base.Tagline, over.Tagline},
		{&base.Bio, over.Bio},
		{&base.Availability, over.Availability},
		{&base.Email, over.Email},
		{&base.ContactText, over.ContactText},
		{&base.GitHubURL, over.GitHubURL},
		{&base.LinkedInURL, over.LinkedInURL},
		{&base.Copyright, over.Copyright},
	} {
		if v := strings.TrimSpace(f.src); v != "" {
			*f.dst = v
		}
	}
	if len(over.FooterLinks) > 0 {
		base.FooterLinks = over.FooterLinks
	}
	return base
}
