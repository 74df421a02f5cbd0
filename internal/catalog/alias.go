package catalog

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/vault"
)

// AliasIndex maps alias strings declared in front matter to their owning
// document. Two documents may claim the same alias; the binding from the
// document later in sorted relative-path order wins, which keeps rebuilds
// deterministic and idempotent.
type AliasIndex struct {
	mu      sync.RWMutex
	aliases map[string]models.Document
}

// NewAliasIndex returns an empty alias index.
func NewAliasIndex() *AliasIndex {
	return &AliasIndex{aliases: make(map[string]models.Document)}
}

// Update rescans every eligible document's front matter and replaces the
// index wholesale. A document with malformed front matter is logged and
// skipped; it never aborts the rebuild.
func (ix *AliasIndex) Update(scanner vault.Scanner, logger *slog.Logger) error {
	docs, err := scanner.List()
	if err != nil {
		return err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })

	next := make(map[string]models.Document)
	for _, doc := range docs {
		data, err := scanner.Read(doc.RelPath)
		if err != nil {
			logger.Warn("aliases: read failed", slog.String("path", doc.RelPath), slog.String("error", err.Error()))
			continue
		}
		fm, err := parser.ExtractFrontMatter(string(data))
		if err != nil {
			logger.Warn("aliases: skipping malformed front matter", slog.String("path", doc.RelPath), slog.String("error", err.Error()))
			continue
		}
		for _, alias := range fm.Aliases() {
			next[alias] = doc
		}
	}

	ix.mu.Lock()
	ix.aliases = next
	ix.mu.Unlock()
	return nil
}

// Resolve performs an exact-match lookup of an alias string.
func (ix *AliasIndex) Resolve(name string) (models.Document, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	doc, ok := ix.aliases[name]
	return doc, ok
}

// All returns a sorted snapshot of alias → document relative path bindings.
func (ix *AliasIndex) All() map[string]string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make(map[string]string, len(ix.aliases))
	for name, doc := range ix.aliases {
		out[name] = doc.RelPath
	}
	return out
}
