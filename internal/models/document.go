// Package models defines the domain types for Ansuz.
package models

import "strings"

// Document is a single eligible Markdown file in the vault. Documents are
// re-derived from the file system on every scan and never persisted.
type Document struct {
	// Path is the absolute path on disk.
	Path string `json:"path"`
	// RelPath is the path relative to the vault root, always with
	// forward slashes.
	RelPath string `json:"rel_path"`
}

// LinkKind distinguishes the two recognized in-text reference syntaxes.
type LinkKind string

const (
	// LinkWiki is a [[target]] or [[target|description]] reference.
	LinkWiki LinkKind = "wiki"
	// LinkMarkdown is a [description](target) reference.
	LinkMarkdown LinkKind = "markdown"
)

// LinkReference is a parsed in-text reference before resolution.
type LinkReference struct {
	Kind        LinkKind `json:"kind"`
	Target      string   `json:"target"`
	Description string   `json:"description,omitempty"`
	// Start and End delimit the literal span in the source text
	// (byte offsets, End exclusive).
	Start int `json:"start"`
	End   int `json:"end"`
}

// FrontMatter is the optional key/value block parsed from the head of a
// document. A nil map means the block is absent.
type FrontMatter map[string]any

// Aliases returns the combined alias declarations: the `alias` key (when a
// string) plus every string entry of the `aliases` sequence, with empty
// entries dropped.
func (fm FrontMatter) Aliases() []string {
	if fm == nil {
		return nil
	}
	var out []string
	if v, ok := fm["alias"]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if v, ok := fm["aliases"]; ok {
		if seq, ok := v.([]any); ok {
			for _, item := range seq {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
