package index

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rajrishis/portfolio/internal/models"
)

// Search result kinds.
const (
	KindProject = "project"
	KindSkill   = "skill"
)

// SearchResult represents one search hit.
type SearchResult struct {
	Kind    string `json:"kind"`
	Slug    string `json:"slug,omitempty"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// TechCount is the number of projects using a technology label.
type TechCount struct {
	Tech     string `json:"tech"`
	Projects int    `json:"projects"`
}

// Rebuild replaces the whole index with the contents of p in one transaction.
func (db *DB) Rebuild(p *models.Portfolio) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	for _, q := range []string{
		`DELETE FROM projects`,
		`DELETE FROM project_tech`,
		`DELETE FROM skills`,
	} {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("index: clear: %w", err)
		}
	}
	if err := ftsClear(tx); err != nil {
		return err
	}

	projStmt, err := tx.Prepare(`
		INSERT INTO projects (slug, position, title, description, tech, accent, github_url, demo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("index: prepare project insert: %w", err)
	}
	defer projStmt.Close()

	techStmt, err := tx.Prepare(`INSERT OR IGNORE INTO project_tech (slug, tech) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("index: prepare tech insert: %w", err)
	}
	defer techStmt.Close()

	for i, pr := range p.Projects {
		techJSON, _ := json.Marshal(pr.Tech)
		if _, err := projStmt.Exec(pr.Slug, i, pr.Title, pr.Description, string(techJSON), pr.Accent, pr.GitHubURL, pr.DemoURL); err != nil {
			return fmt.Errorf("index: insert project %s: %w", pr.Slug, err)
		}
		for _, t := range pr.Tech {
			if _, err := techStmt.Exec(pr.Slug, t); err != nil {
				return fmt.Errorf("index: insert tech: %w", err)
			}
		}
		if err := ftsInsert(tx, KindProject, pr.Slug, pr.Title, pr.Description, pr.Tech); err != nil {
			return err
		}
	}

	for i, s := range p.Skills {
		if _, err := tx.Exec(`INSERT INTO skills (position, label) VALUES (?, ?)`, i, s); err != nil {
			return fmt.Errorf("index: insert skill: %w", err)
		}
		if err := ftsInsert(tx, KindSkill, "", s, s, nil); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('version', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, p.Version); err != nil {
		return fmt.Errorf("index: set version: %w", err)
	}

	return tx.Commit()
}

// Version returns the content version of the last rebuild, or empty string.
func (db *DB) Version() (string, error) {
	var v string
	err := db.conn.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("index: version: %w", err)
	}
	return v, nil
}

// ProjectsByTech returns the slugs of projects using tech (case-insensitive),
// in stored order.
func (db *DB) ProjectsByTech(tech string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT p.slug
		FROM project_tech t
		JOIN projects p ON p.slug = t.slug
		WHERE t.tech = ?
		ORDER BY p.position`, tech)
	if err != nil {
		return nil, fmt.Errorf("index: projects by tech: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TechCounts returns every technology label with its project count, most
// used first.
func (db *DB) TechCounts() ([]TechCount, error) {
	rows, err := db.conn.Query(`
		SELECT MIN(tech), COUNT(*) AS n
		FROM project_tech
		GROUP BY tech
		ORDER BY n DESC, MIN(tech)`)
	if err != nil {
		return nil, fmt.Errorf("index: tech counts: %w", err)
	}
	defer rows.Close()

	var out []TechCount
	for rows.Next() {
		var tc TechCount
		if err := rows.Scan(&tc.Tech, &tc.Projects); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
