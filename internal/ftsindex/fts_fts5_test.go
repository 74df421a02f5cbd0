//go:build sqlite_fts5

package ftsindex

import (
	"strings"
	"testing"
	"time"
)

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDocument(DocRow{Path: "a.md", UpdatedAt: time.Now()},
		"the migration plan covers the rollout schedule", nil)
	_ = db.UpsertDocument(DocRow{Path: "b.md", UpdatedAt: time.Now()},
		"unrelated content", nil)

	hits, err := db.Search("migration", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Path != "a.md" {
		t.Fatalf("hits = %v", hits)
	}
	if !strings.Contains(hits[0].Snippet, "<b>") {
		t.Errorf("snippet not highlighted: %q", hits[0].Snippet)
	}
}

func TestFTS5_AliasColumnSearchable(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDocument(DocRow{Path: "a.md", Aliases: []string{"codename"}, UpdatedAt: time.Now()},
		"body text", nil)

	hits, err := db.Search("codename", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Path != "a.md" {
		t.Errorf("hits = %v", hits)
	}
}

func TestFTS5_DeleteRemovesFromFTS(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDocument(DocRow{Path: "a.md", UpdatedAt: time.Now()}, "searchable text", nil)
	if err := db.DeleteDocument("a.md"); err != nil {
		t.Fatal(err)
	}
	hits, err := db.Search("searchable", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("hits after delete = %v", hits)
	}
}
