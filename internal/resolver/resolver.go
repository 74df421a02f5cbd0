// Package resolver maps in-text references to concrete vault documents.
package resolver

import (
	"path"
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// Kind classifies a resolution outcome.
type Kind string

const (
	// KindDocument means the reference matched exactly one document.
	KindDocument Kind = "document"
	// KindAmbiguous means multiple documents matched; the caller must
	// present Candidates for manual selection.
	KindAmbiguous Kind = "ambiguous"
	// KindNotFound means no document matched.
	KindNotFound Kind = "not_found"
	// KindExternal means the target is a URL to hand off to the
	// open-externally collaborator.
	KindExternal Kind = "external"
)

// Resolution is the structured outcome of resolving a reference. The
// resolver never performs interactive I/O; disambiguation is the caller's
// concern.
type Resolution struct {
	Kind Kind `json:"kind"`
	// Target is the normalized target that was matched against the vault
	// (or, for KindExternal, the raw URL string to hand off).
	Target string `json:"target"`
	// Document is set for KindDocument.
	Document models.Document `json:"document,omitempty"`
	// Candidates is the full match list for KindAmbiguous, sorted by
	// relative path.
	Candidates []models.Document `json:"candidates,omitempty"`
}

// Chooser selects one candidate from an ambiguous match list. Interactive
// front ends implement it with a prompt; headless callers with a policy.
type Chooser interface {
	Choose(candidates []models.Document) (models.Document, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(candidates []models.Document) (models.Document, error)

// Choose calls fn.
func (fn ChooserFunc) Choose(candidates []models.Document) (models.Document, error) {
	return fn(candidates)
}

// Resolve maps a parsed reference onto the given document set. It is a pure
// function of (reference, docs): same inputs always produce the same
// resolution.
//
// The target is normalized ("%20" becomes a space; extensionless wiki
// targets get ".md" appended), then a target containing a colon is handed
// off as an external URL before any filesystem matching. Otherwise the
// normalized target is suffix-matched against the documents' relative
// paths, which permits partial-path references like [[notes/a]].
func Resolve(ref models.LinkReference, docs []models.Document) Resolution {
	target := strings.ReplaceAll(ref.Target, "%20", " ")

	if strings.Contains(target, ":") {
		// External URLs are handed off with the raw target string.
		return Resolution{Kind: KindExternal, Target: ref.Target}
	}

	// Wiki-link convention: an extensionless target refers to a markdown
	// file. Markdown-link targets are taken verbatim.
	if ref.Kind == models.LinkWiki && path.Ext(target) == "" {
		target += ".md"
	}

	var candidates []models.Document
	for _, doc := range docs {
		if strings.HasSuffix(doc.RelPath, target) {
			candidates = append(candidates, doc)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].RelPath < candidates[j].RelPath
	})

	switch len(candidates) {
	case 0:
		return Resolution{Kind: KindNotFound, Target: target}
	case 1:
		return Resolution{Kind: KindDocument, Target: target, Document: candidates[0]}
	default:
		return Resolution{Kind: KindAmbiguous, Target: target, Candidates: candidates}
	}
}
