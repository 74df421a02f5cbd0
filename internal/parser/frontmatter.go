// Package parser extracts front matter, links, and tags from Markdown text.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

const fmDelim = "---"

// ExtractFrontMatter parses the leading metadata block of a document.
//
// A block is present iff the text's first three bytes are exactly "---" and a
// second delimiter follows. Only the first two delimiter occurrences are
// consulted, so a later unrelated "---" in the body cannot break parsing.
// Returns (nil, nil) when the block is absent or unterminated; a malformed
// mapping body is a parse error for that single document.
func ExtractFrontMatter(text string) (models.FrontMatter, error) {
	if !strings.HasPrefix(text, fmDelim) {
		return nil, nil
	}
	parts := strings.SplitN(text, fmDelim, 3)
	if len(parts) < 3 {
		// Unterminated block.
		return nil, nil
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, fmt.Errorf("parser: %w: %v", apperr.ErrParse, err)
	}
	if fm == nil {
		// Empty block still counts as present.
		fm = map[string]any{}
	}
	return models.FrontMatter(fm), nil
}
