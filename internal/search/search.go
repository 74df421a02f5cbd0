// Package search implements regex search across vault document bodies.
package search

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/starford/ansuz/internal/vault"
)

// Run performs a case-insensitive regex search over the scanner's eligible
// file set and returns the matching relative paths, sorted. Matches are
// file-level; unreadable documents are skipped.
func Run(pattern string, scanner vault.Scanner) ([]string, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("search: compile %q: %w", pattern, err)
	}
	docs, err := scanner.List()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, doc := range docs {
		data, err := scanner.Read(doc.RelPath)
		if err != nil {
			continue
		}
		if re.Match(data) {
			out = append(out, doc.RelPath)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ByTag searches for documents containing a previously indexed tag string.
// The tag is matched literally (quoted), case-insensitively.
func ByTag(tag string, scanner vault.Scanner) ([]string, error) {
	return Run(regexp.QuoteMeta(tag), scanner)
}
