package ftsindex

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocRow represents a row in the documents table.
type DocRow struct {
	Path      string
	Checksum  string
	Tags      []string
	Aliases   []string
	UpdatedAt time.Time
}

// SearchResult represents one full-text search hit.
type SearchResult struct {
	Path    string `json:"path"`
	Snippet string `json:"snippet"`
}

// UpsertDocument inserts or replaces a document, its FTS entry, and its
// outgoing link edges within a transaction.
func (db *DB) UpsertDocument(d DocRow, body string, links []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("ftsindex: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	tagsJSON, _ := json.Marshal(d.Tags)
	aliasesJSON, _ := json.Marshal(d.Aliases)

	_, err = tx.Exec(`
		INSERT INTO documents (path, checksum, tags, aliases, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			checksum   = excluded.checksum,
			tags       = excluded.tags,
			aliases    = excluded.aliases,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, d.Path, d.Checksum, string(tagsJSON), string(aliasesJSON), body, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ftsindex: upsert document: %w", err)
	}

	// FTS upsert (no-op when FTS5 tag is absent).
	if err := ftsUpsert(tx, d.Path, body, d.Tags, d.Aliases); err != nil {
		return err
	}

	// Replace link edges: delete old then bulk insert.
	_, _ = tx.Exec(`DELETE FROM links WHERE source = ?`, d.Path)
	if len(links) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO links (source, target) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("ftsindex: prepare link insert: %w", err)
		}
		defer stmt.Close()
		for _, target := range links {
			if _, err := stmt.Exec(d.Path, target); err != nil {
				return fmt.Errorf("ftsindex: insert link: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeleteDocument removes a document, its FTS entry, and its outgoing links.
func (db *DB) DeleteDocument(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("ftsindex: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM links WHERE source = ?`, path)
	_, _ = tx.Exec(`DELETE FROM documents WHERE path = ?`, path)

	return tx.Commit()
}

// AllChecksums returns every indexed path with its stored checksum.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM documents`)
	if err != nil {
		return nil, fmt.Errorf("ftsindex: all checksums: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// Backlinks returns the source paths of every link edge pointing at target.
func (db *DB) Backlinks(target string) ([]string, error) {
	rows, err := db.conn.Query(`SELECT source FROM links WHERE target = ? ORDER BY source`, target)
	if err != nil {
		return nil, fmt.Errorf("ftsindex: backlinks: %w", err)
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
