// Package index provides a SQLite-backed search index over the portfolio
// content, with optional FTS5 full-text search.
package index

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const coreSchemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
	slug        TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	tech        TEXT NOT NULL DEFAULT '[]',
	accent      TEXT NOT NULL DEFAULT '',
	github_url  TEXT NOT NULL DEFAULT '',
	demo_url    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS project_tech (
	slug TEXT NOT NULL,
	tech TEXT NOT NULL COLLATE NOCASE,
	UNIQUE(slug, tech)
);

CREATE INDEX IF NOT EXISTS idx_project_tech_tech ON project_tech(tech);

CREATE TABLE IF NOT EXISTS skills (
	position INTEGER PRIMARY KEY,
	label    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// DB wraps a sql.DB with index-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
// ":memory:" keeps the index in process memory; the pool is limited to one
// connection so every query sees the same database.
func Open(dsn string) (*DB, error) {
	params := "_busy_timeout=5000&_foreign_keys=on"
	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory") {
		params += "&_journal_mode=WAL"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	conn, err := sql.Open("sqlite3", dsn+sep+params)
	if err != nil {
		return nil, fmt.Errorf("index: open db: %w", err)
	}
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: ping: %w", err)
	}
	if _, err := conn.Exec(coreSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply core schema: %w", err)
	}
	if err := initFTS(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply fts schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
