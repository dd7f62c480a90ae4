//go:build !sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"
)

// likeEscaper escapes LIKE wildcards so the query matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func initFTS(_ *sql.DB) error {
	// FTS5 not available; search uses LIKE over the projects and skills tables.
	return nil
}

func ftsClear(_ *sql.Tx) error { return nil }

func ftsInsert(_ *sql.Tx, _, _, _, _ string, _ []string) error { return nil }

// Search performs a LIKE-based search (fallback when FTS5 is not compiled in).
// Projects come first in stored order, then skills.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + likeEscaper.Replace(query) + "%"
	rows, err := db.conn.Query(`
		SELECT kind, slug, title, snippet FROM (
			SELECT 'project' AS kind, slug, title, substr(description, 1, 200) AS snippet, 0 AS grp, position
			FROM projects
			WHERE title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR tech LIKE ? ESCAPE '\'
			UNION ALL
			SELECT 'skill', '', label, label, 1, position
			FROM skills
			WHERE label LIKE ? ESCAPE '\'
		)
		ORDER BY grp, position
		LIMIT ?
	`, like, like, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Kind, &r.Slug, &r.Title, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
