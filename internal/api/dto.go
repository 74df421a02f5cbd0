package api

import (
	"github.com/starford/ansuz/internal/ftsindex"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/resolver"
)

// FileListResponse wraps the eligible file enumeration.
type FileListResponse struct {
	Files []models.Document `json:"files" validate:"required"`
	Total int               `json:"total" example:"42" validate:"required"`
}

// TagListResponse wraps the tag catalog.
type TagListResponse struct {
	Tags []string `json:"tags" validate:"required"`
}

// AliasListResponse wraps the alias catalog bindings.
type AliasListResponse struct {
	Aliases map[string]string `json:"aliases" validate:"required"`
}

// ResolveRequest asks for a reference resolution. Either Target+Kind name a
// reference directly, or Text+Cursor locate one inside a document body
// (Current is then the relative path of that document, used for the
// self-link guard).
type ResolveRequest struct {
	Target  string `json:"target,omitempty" example:"notes/a"`
	Kind    string `json:"kind,omitempty" example:"wiki"`
	Text    string `json:"text,omitempty"`
	Cursor  int    `json:"cursor,omitempty"`
	Current string `json:"current,omitempty" example:"notes/self.md"`
}

// ResolveResponse is the structured resolution outcome.
type ResolveResponse struct {
	resolver.Resolution
	// Recognized is false when no reference was found at the cursor.
	Recognized bool `json:"recognized"`
}

// SearchResponse wraps regex search hits.
type SearchResponse struct {
	Paths []string `json:"paths" validate:"required"`
}

// FulltextResponse wraps sidecar full-text hits.
type FulltextResponse struct {
	Results []ftsindex.SearchResult `json:"results" validate:"required"`
}

// BacklinksResponse wraps the backlink sources for a target.
type BacklinksResponse struct {
	Backlinks []string `json:"backlinks" validate:"required"`
}
