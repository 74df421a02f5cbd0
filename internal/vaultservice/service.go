// Package vaultservice exposes the vault query surfaces behind one facade:
// file enumeration, tag and alias catalogs, link resolution, and search.
package vaultservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/catalog"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/resolver"
	"github.com/starford/ansuz/internal/search"
	"github.com/starford/ansuz/internal/vault"
)

// Service coordinates the scanner, catalogs, and resolver. The catalogs are
// owned by the service instance; there is no process-wide index state.
type Service struct {
	scanner vault.Scanner
	tags    *catalog.TagIndex
	aliases *catalog.AliasIndex
	chooser resolver.Chooser
	logger  *slog.Logger
}

// NewService creates a service over the given scanner. The catalogs start
// empty until the first Update call.
func NewService(scanner vault.Scanner, logger *slog.Logger) *Service {
	return &Service{
		scanner: scanner,
		tags:    catalog.NewTagIndex(),
		aliases: catalog.NewAliasIndex(),
		logger:  logger,
	}
}

// SetChooser installs the disambiguation strategy used by Follow. Without
// one, ambiguous references surface as apperr.ErrNoChoice.
func (s *Service) SetChooser(c resolver.Chooser) { s.chooser = c }

// ListFiles re-enumerates the eligible file set.
func (s *Service) ListFiles(_ context.Context) ([]models.Document, error) {
	return s.scanner.List()
}

// FindTags extracts tag tokens from a text.
func (s *Service) FindTags(text string) []string {
	return parser.FindTags(text)
}

// UpdateTags rebuilds the tag catalog from a full vault rescan.
func (s *Service) UpdateTags(_ context.Context) error {
	return s.tags.Update(s.scanner, s.logger)
}

// Tags returns the current base tag catalog.
func (s *Service) Tags() []string { return s.tags.Tags() }

// ExpandedTags returns the completion-ready tag set (original, lower-cased,
// and capitalized variants).
func (s *Service) ExpandedTags() []string {
	return catalog.ExpandForCompletion(s.tags.Tags())
}

// CompleteTag returns expanded tags matching a prefix.
func (s *Service) CompleteTag(prefix string) []string {
	return s.tags.Complete(prefix)
}

// UpdateAliases rebuilds the alias catalog from a full vault rescan.
func (s *Service) UpdateAliases(_ context.Context) error {
	return s.aliases.Update(s.scanner, s.logger)
}

// Aliases returns the current alias → path bindings.
func (s *Service) Aliases() map[string]string { return s.aliases.All() }

// ResolveAlias looks up an alias by exact match.
func (s *Service) ResolveAlias(_ context.Context, name string) (models.Document, error) {
	doc, ok := s.aliases.Resolve(name)
	if !ok {
		return models.Document{}, fmt.Errorf("alias %q: %w", name, apperr.ErrNotFound)
	}
	return doc, nil
}

// ResolveReference resolves a parsed reference against the current file set.
// The file set is re-enumerated on every call to avoid staleness.
func (s *Service) ResolveReference(_ context.Context, ref models.LinkReference) (resolver.Resolution, error) {
	docs, err := s.scanner.List()
	if err != nil {
		return resolver.Resolution{}, err
	}
	return resolver.Resolve(ref, docs), nil
}

// ResolveAt recognizes the reference at a cursor offset in text and resolves
// it. currentRel, when non-empty, is the relative path of the document the
// text belongs to: a wiki link that resolves back to that same document is
// not a followable link and reports no recognition.
func (s *Service) ResolveAt(ctx context.Context, text string, cursor int, currentRel string) (resolver.Resolution, bool, error) {
	ref, ok := parser.LinkAt(text, cursor)
	if !ok {
		return resolver.Resolution{}, false, nil
	}
	res, err := s.ResolveReference(ctx, ref)
	if err != nil {
		return resolver.Resolution{}, false, err
	}
	if ref.Kind == models.LinkWiki && currentRel != "" &&
		res.Kind == resolver.KindDocument && res.Document.RelPath == currentRel {
		return resolver.Resolution{}, false, nil
	}
	return res, true, nil
}

// Follow turns a resolution into a single document, applying the injected
// chooser on ambiguity.
func (s *Service) Follow(res resolver.Resolution) (models.Document, error) {
	switch res.Kind {
	case resolver.KindDocument:
		return res.Document, nil
	case resolver.KindAmbiguous:
		if s.chooser == nil {
			return models.Document{}, fmt.Errorf("%q: %w", res.Target, apperr.ErrNoChoice)
		}
		return s.chooser.Choose(res.Candidates)
	default:
		return models.Document{}, fmt.Errorf("%q: %w", res.Target, apperr.ErrNotFound)
	}
}

// Search runs a case-insensitive regex over the vault.
func (s *Service) Search(_ context.Context, pattern string) ([]string, error) {
	return search.Run(pattern, s.scanner)
}

// SearchByTag searches for documents carrying an indexed tag.
func (s *Service) SearchByTag(_ context.Context, tag string) ([]string, error) {
	return search.ByTag(tag, s.scanner)
}

// ReadDocument returns the raw content of a vault document.
func (s *Service) ReadDocument(_ context.Context, rel string) ([]byte, error) {
	return s.scanner.Read(rel)
}

// Reindex rebuilds both catalogs.
func (s *Service) Reindex(ctx context.Context) error {
	if err := s.UpdateTags(ctx); err != nil {
		return err
	}
	return s.UpdateAliases(ctx)
}
