// Package catalog maintains the on-demand tag and alias indexes. Both are
// caller-owned state objects rebuilt by full vault rescans; readers never
// observe a half-updated structure because each rebuild replaces the whole
// catalog under the lock.
package catalog

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/vault"
)

// TagIndex is the deduplicated catalog of tag tokens across the vault.
type TagIndex struct {
	mu   sync.RWMutex
	tags map[string]struct{}
}

// NewTagIndex returns an empty tag index.
func NewTagIndex() *TagIndex {
	return &TagIndex{tags: make(map[string]struct{})}
}

// Update rescans every eligible document and replaces the catalog wholesale.
// Unreadable documents are skipped.
func (ix *TagIndex) Update(scanner vault.Scanner, logger *slog.Logger) error {
	docs, err := scanner.List()
	if err != nil {
		return err
	}

	next := make(map[string]struct{})
	for _, doc := range docs {
		data, err := scanner.Read(doc.RelPath)
		if err != nil {
			logger.Warn("tags: read failed", slog.String("path", doc.RelPath), slog.String("error", err.Error()))
			continue
		}
		for _, tag := range parser.FindTags(string(data)) {
			next[tag] = struct{}{}
		}
	}

	ix.mu.Lock()
	ix.tags = next
	ix.mu.Unlock()
	return nil
}

// Tags returns a sorted snapshot of the base tag catalog.
func (ix *TagIndex) Tags() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]string, 0, len(ix.tags))
	for t := range ix.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Complete returns the expanded tags matching the given prefix. This is the
// whole contract the completion backend needs from the core.
func (ix *TagIndex) Complete(prefix string) []string {
	var out []string
	for _, t := range ExpandForCompletion(ix.Tags()) {
		if strings.HasPrefix(t, prefix) {
			out = append(out, t)
		}
	}
	return out
}

// ExpandForCompletion produces, for each base tag, the original, an
// all-lower-case form, and a word-capitalized form (the leading '#' is
// stripped before casing and re-added after), deduplicated and sorted.
// Expansion is idempotent.
func ExpandForCompletion(tags []string) []string {
	set := make(map[string]struct{}, len(tags)*3)
	for _, t := range tags {
		base := strings.TrimPrefix(t, "#")
		set[t] = struct{}{}
		set["#"+strings.ToLower(base)] = struct{}{}
		set["#"+capitalize(base)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// capitalize upper-cases the first letter of each word and lower-cases the
// rest, treating any non-alphanumeric rune as a word boundary.
func capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	boundary := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if boundary {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			boundary = false
		} else {
			b.WriteRune(r)
			boundary = true
		}
	}
	return b.String()
}
