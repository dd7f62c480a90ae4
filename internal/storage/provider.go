// Package storage provides read-only access to the content directory.
package storage

import "github.com/rajrishis/portfolio/internal/models"

// Provider is the interface for content directory reads.
type Provider interface {
	// List returns metadata for every file under dir (relative to the root)
	// whose name ends in one of exts. An empty exts matches every file.
	List(dir string, exts ...string) ([]models.FileMeta, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Root returns the absolute root directory.
	Root() string
}
