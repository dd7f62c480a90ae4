package index

import "github.com/rajrishis/portfolio/internal/models"

// ContentIndex defines the interface for content indexing operations.
// Consumers depend on this interface rather than the concrete *DB type.
type ContentIndex interface {
	Rebuild(p *models.Portfolio) error
	Version() (string, error)
	Search(query string, limit int) ([]SearchResult, error)
	ProjectsByTech(tech string) ([]string, error)
	TechCounts() ([]TechCount, error)
	Close() error
}

// Verify *DB satisfies ContentIndex at compile time.
var _ ContentIndex = (*DB)(nil)
