package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/ansuz/internal/ftsindex"
	"github.com/starford/ansuz/internal/vault"
	"github.com/starford/ansuz/internal/vaultservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *vaultservice.Service, db *ftsindex.DB, scanner vault.Scanner, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, db, scanner)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// File enumeration.
	r.Get("/files", h.ListFiles)

	// Tag catalog.
	r.Get("/tags", h.ListTags)
	r.Get("/tags/complete", h.CompleteTags)

	// Alias catalog.
	r.Get("/aliases", h.ListAliases)
	r.Get("/aliases/{name}", h.ResolveAlias)

	// Link resolution.
	r.Post("/resolve", h.Resolve)
	r.Get("/backlinks", h.Backlinks)

	// Search.
	r.Get("/search", h.Search)
	r.Get("/search/tag", h.SearchByTag)
	r.Get("/fulltext", h.Fulltext)

	// Index maintenance.
	r.Post("/reindex", h.Reindex)

	// SSE endpoint (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
