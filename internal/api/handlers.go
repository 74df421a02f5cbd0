package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/ftsindex"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/vault"
	"github.com/starford/ansuz/internal/vaultservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc     *vaultservice.Service
	db      *ftsindex.DB
	scanner vault.Scanner
}

// NewHandler creates a new Handler.
func NewHandler(svc *vaultservice.Service, db *ftsindex.DB, scanner vault.Scanner) *Handler {
	return &Handler{svc: svc, db: db, scanner: scanner}
}

// ListFiles handles GET /api/files.
//
//	@Summary		Enumerate eligible vault documents
//	@Tags			files
//	@Produce		json
//	@Success		200	{object}	FileListResponse
//	@Security		BearerAuth
//	@Router			/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.ListFiles(r.Context())
	if err != nil {
		slog.Error("list files failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if files == nil {
		files = []models.Document{}
	}
	writeJSON(w, http.StatusOK, FileListResponse{Files: files, Total: len(files)})
}

// ListTags handles GET /api/tags.
//
//	@Summary		List the tag catalog
//	@Tags			tags
//	@Produce		json
//	@Param			expanded	query		bool	false	"Include completion variants"
//	@Success		200			{object}	TagListResponse
//	@Security		BearerAuth
//	@Router			/tags [get]
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	var tags []string
	if r.URL.Query().Get("expanded") == "true" {
		tags = h.svc.ExpandedTags()
	} else {
		tags = h.svc.Tags()
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, TagListResponse{Tags: tags})
}

// CompleteTags handles GET /api/tags/complete.
//
//	@Summary		Complete a tag prefix against the expanded catalog
//	@Tags			tags
//	@Produce		json
//	@Param			prefix	query		string	true	"Tag prefix"
//	@Success		200		{object}	TagListResponse
//	@Security		BearerAuth
//	@Router			/tags/complete [get]
func (h *Handler) CompleteTags(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	tags := h.svc.CompleteTag(prefix)
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, TagListResponse{Tags: tags})
}

// ListAliases handles GET /api/aliases.
//
//	@Summary		List alias bindings
//	@Tags			aliases
//	@Produce		json
//	@Success		200	{object}	AliasListResponse
//	@Security		BearerAuth
//	@Router			/aliases [get]
func (h *Handler) ListAliases(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, AliasListResponse{Aliases: h.svc.Aliases()})
}

// ResolveAlias handles GET /api/aliases/{name}.
//
//	@Summary		Resolve an alias to its owning document
//	@Tags			aliases
//	@Produce		json
//	@Param			name	path		string	true	"Alias string"
//	@Success		200		{object}	models.Document
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/aliases/{name} [get]
func (h *Handler) ResolveAlias(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := h.svc.ResolveAlias(r.Context(), name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("resolve alias failed", slog.String("name", name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Resolve handles POST /api/resolve.
//
//	@Summary		Resolve a reference to a document, candidate list, or external URL
//	@Tags			resolve
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ResolveRequest	true	"Reference to resolve"
//	@Success		200		{object}	ResolveResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/resolve [post]
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	if req.Text != "" {
		res, ok, err := h.svc.ResolveAt(r.Context(), req.Text, req.Cursor, req.Current)
		if err != nil {
			slog.Error("resolve at cursor failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			return
		}
		writeJSON(w, http.StatusOK, ResolveResponse{Resolution: res, Recognized: ok})
		return
	}

	if req.Target == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("target or text is required"))
		return
	}
	kind := models.LinkKind(req.Kind)
	if kind != models.LinkMarkdown {
		kind = models.LinkWiki
	}
	res, err := h.svc.ResolveReference(r.Context(), models.LinkReference{Kind: kind, Target: req.Target})
	if err != nil {
		slog.Error("resolve failed", slog.String("target", req.Target), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ResolveResponse{Resolution: res, Recognized: true})
}

// Search handles GET /api/search.
//
//	@Summary		Case-insensitive regex search over document bodies
//	@Tags			search
//	@Produce		json
//	@Param			q	query		string	true	"Regex pattern"
//	@Success		200	{object}	SearchResponse
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("q")
	if pattern == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("q is required"))
		return
	}
	paths, err := h.svc.Search(r.Context(), pattern)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if paths == nil {
		paths = []string{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Paths: paths})
}

// SearchByTag handles GET /api/search/tag.
//
//	@Summary		Find documents carrying an indexed tag
//	@Tags			search
//	@Produce		json
//	@Param			tag	query		string	true	"Tag token"
//	@Success		200	{object}	SearchResponse
//	@Security		BearerAuth
//	@Router			/search/tag [get]
func (h *Handler) SearchByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("tag is required"))
		return
	}
	paths, err := h.svc.SearchByTag(r.Context(), tag)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if paths == nil {
		paths = []string{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Paths: paths})
}

// Fulltext handles GET /api/fulltext.
//
//	@Summary		Full-text search via the SQLite sidecar
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	FulltextResponse
//	@Security		BearerAuth
//	@Router			/fulltext [get]
func (h *Handler) Fulltext(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("q is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.db.Search(q, limit)
	if err != nil {
		slog.Error("fulltext search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if results == nil {
		results = []ftsindex.SearchResult{}
	}
	writeJSON(w, http.StatusOK, FulltextResponse{Results: results})
}

// Backlinks handles GET /api/backlinks.
//
//	@Summary		List documents whose links point at a target
//	@Tags			links
//	@Produce		json
//	@Param			target	query		string	true	"Link target"
//	@Success		200		{object}	BacklinksResponse
//	@Security		BearerAuth
//	@Router			/backlinks [get]
func (h *Handler) Backlinks(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("target is required"))
		return
	}
	bl, err := h.db.Backlinks(target)
	if err != nil {
		slog.Error("backlinks failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if bl == nil {
		bl = []string{}
	}
	writeJSON(w, http.StatusOK, BacklinksResponse{Backlinks: bl})
}

// Reindex handles POST /api/reindex: rebuilds both catalogs and brings the
// sidecar up to date.
//
//	@Summary		Rebuild the tag/alias catalogs and sync the sidecar
//	@Tags			index
//	@Produce		json
//	@Success		202	{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/reindex [post]
func (h *Handler) Reindex(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reindex(r.Context()); err != nil {
		slog.Error("reindex failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if err := ftsindex.Sync(h.db, h.scanner, slog.Default()); err != nil {
		slog.Error("sidecar sync failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "reindexed"})
}
