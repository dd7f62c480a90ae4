// Package testutil provides shared test helpers for content directories and
// search indexes.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rajrishis/portfolio/internal/index"
	"github.com/rajrishis/portfolio/internal/storage"
)

// Logger returns a logger that discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// TestDB opens an in-memory index that is closed when the test ends.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	db, err := index.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// WriteFile writes content to rel under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ProjectMarkdown renders a minimal valid project file.
func ProjectMarkdown(title string, order int, tech ...string) string {
	return fmt.Sprintf("---\ntitle: %s\norder: %d\ntech: [%s]\ngithub: https://github.com/example/%s\naccent: blue\n---\n%s does things.\n",
		title, order, strings.Join(tech, ", "), strings.ToLower(strings.ReplaceAll(title, " ", "-")), title)
}

// SiteYAML is a minimal valid site.yaml.
const SiteYAML = `profile:
  handle: "@ada"
  name: Ada Lovelace
  tagline: Analyst
  bio: Writes the first programs.
  email: ada@example.com
  contact_text: Say hello.
  github: https://github.com/ada
skills: [Go, SQL]
`

// ContentDir creates a content directory with site.yaml and two projects.
func ContentDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "site.yaml", SiteYAML)
	WriteFile(t, dir, "projects/engine.md", ProjectMarkdown("Analytical Engine", 1, "Go", "SQLite"))
	WriteFile(t, dir, "projects/notes.md", ProjectMarkdown("Notes", 2, "Markdown"))
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = fs.Close() })
	return dir, fs
}
