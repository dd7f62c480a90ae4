package content

import (
	"errors"
	"testing"

	"github.com/rajrishis/portfolio/internal/apperr"
	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/storage"
	"github.com/rajrishis/portfolio/internal/testutil"
)

func TestBuiltin_SixProjectsInOrder(t *testing.T) {
	p := Builtin()
	want := []string{
		"AI Chat Application",
		"CI/CD Pipeline Automation",
		"E-Commerce Platform",
		"Task Management System",
		"Microservices Infrastructure",
		"DevOps Dashboard",
	}
	if len(p.Projects) != len(want) {
		t.Fatalf("projects = %d, want %d", len(p.Projects), len(want))
	}
	for i, pr := range p.Projects {
		if pr.Title != want[i] {
			t.Errorf("project %d = %q, want %q", i, pr.Title, want[i])
		}
		if pr.Description == "" || len(pr.Tech) == 0 {
			t.Errorf("project %q missing description or tech", pr.Title)
		}
	}
	if len(p.Skills) != 12 {
		t.Errorf("skills = %d, want 12", len(p.Skills))
	}
	if err := Validate(p); err != nil {
		t.Errorf("builtin content invalid: %v", err)
	}
}

func TestBuiltin_FreshCopies(t *testing.T) {
	a := Builtin()
	a.Projects[0].Title = "mutated"
	if Builtin().Projects[0].Title == "mutated" {
		t.Error("Builtin must not share slices between calls")
	}
}

func TestNewStore_BuiltinOnly(t *testing.T) {
	s, err := NewStore(nil, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Version != BuiltinVersion {
		t.Errorf("version = %q", s.Snapshot().Version)
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load without directory should be a no-op: %v", err)
	}
}

func TestNewStore_ContentDir(t *testing.T) {
	_, fs := testutil.ContentDir(t)
	s, err := NewStore(fs, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	p := s.Snapshot()
	if p.Profile.Name != "Ada Lovelace" {
		t.Errorf("name = %q", p.Profile.Name)
	}
	if len(p.Projects) != 2 || p.Projects[0].Slug != "engine" || p.Projects[1].Slug != "notes" {
		t.Fatalf("projects = %+v", p.Projects)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" {
		t.Errorf("skills = %v", p.Skills)
	}
	if p.Version == BuiltinVersion || p.Version == "" {
		t.Errorf("version = %q", p.Version)
	}
}

func TestNewStore_EmptyDirFallsBack(t *testing.T) {
	fs, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStore(fs, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	p := s.Snapshot()
	if len(p.Projects) != 6 || p.Version != BuiltinVersion {
		t.Errorf("empty dir should serve builtin content, got %d projects version %q", len(p.Projects), p.Version)
	}
}

func TestNewStore_PartialSiteFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "site.yaml", "skills: [Go, Rust]\n")
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStore(fs, testutil.Logger())
	if err != nil {
		t.Fatalf("skills-only site file should load: %v", err)
	}
	p := s.Snapshot()
	if len(p.Skills) != 2 || p.Skills[1] != "Rust" {
		t.Errorf("skills = %v", p.Skills)
	}
	builtin := Builtin().Profile
	if p.Profile.Name != builtin.Name || p.Profile.Email != builtin.Email {
		t.Errorf("profile should fall back to builtin, got %+v", p.Profile)
	}

	testutil.WriteFile(t, dir, "site.yaml", "profile:\n  tagline: Go Developer\n")
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	p = s.Snapshot()
	if p.Profile.Tagline != "Go Developer" || p.Profile.Name != builtin.Name {
		t.Errorf("tagline override = %+v", p.Profile)
	}
	if len(p.Skills) != len(Builtin().Skills) {
		t.Errorf("skills = %v, want builtin", p.Skills)
	}
}

func TestLoad_OrderField(t *testing.T) {
	dir, fs := testutil.ContentDir(t)
	testutil.WriteFile(t, dir, "projects/aaa.md", testutil.ProjectMarkdown("Late", 9, "Go"))
	s, err := NewStore(fs, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	p := s.Snapshot()
	if got := p.Projects[len(p.Projects)-1].Slug; got != "aaa" {
		t.Errorf("last slug = %q, want aaa", got)
	}
}

func TestLoad_InvalidKeepsPrevious(t *testing.T) {
	dir, fs := testutil.ContentDir(t)
	s, err := NewStore(fs, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	before := s.Snapshot()

	testutil.WriteFile(t, dir, "projects/broken.md", "---\ntitle: Broken\ntech: []\naccent: blue\n---\nNo tech.\n")
	err = s.Load()
	if !errors.Is(err, apperr.ErrInvalidContent) {
		t.Fatalf("err = %v, want ErrInvalidContent", err)
	}
	if s.Snapshot() != before {
		t.Error("failed load must keep the previous snapshot")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(p *models.Portfolio){
		"bad accent":             func(p *models.Portfolio) { p.Projects[0].Accent = "chartreuse" },
		"bad url":                func(p *models.Portfolio) { p.Projects[0].GitHubURL = "not a url" },
		"schemeless url":         func(p *models.Portfolio) { p.Projects[0].GitHubURL = "github.com/rajrishis/ai-chat" },
		"ftp demo":               func(p *models.Portfolio) { p.Projects[0].DemoURL = "ftp://example.com/demo" },
		"schemeless profile url": func(p *models.Portfolio) { p.Profile.LinkedInURL = "linkedin.com/in/someone" },
		"schemeless footer link": func(p *models.Portfolio) { p.Profile.FooterLinks[0].URL = "github.com/rajrishis" },
		"footer link no label":   func(p *models.Portfolio) { p.Profile.FooterLinks[0].Label = "" },
		"footer bad mailto":      func(p *models.Portfolio) { p.Profile.FooterLinks[2].URL = "mailto:" },
		"empty title":            func(p *models.Portfolio) { p.Projects[0].Title = "" },
		"duplicate slug":         func(p *models.Portfolio) { p.Projects[1].Slug = p.Projects[0].Slug },
		"bad email":              func(p *models.Portfolio) { p.Profile.Email = "nobody" },
		"no projects":            func(p *models.Portfolio) { p.Projects = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := Builtin()
			mutate(p)
			if err := Validate(p); !errors.Is(err, apperr.ErrInvalidContent) {
				t.Errorf("err = %v, want ErrInvalidContent", err)
			}
		})
	}

	p := Builtin()
	p.Projects[0].DemoURL = ""
	p.Profile.FooterLinks = append(p.Profile.FooterLinks, models.Link{Label: "Blog", URL: "http://blog.example.com"})
	if err := Validate(p); err != nil {
		t.Errorf("empty demo and http footer link should pass: %v", err)
	}
}
