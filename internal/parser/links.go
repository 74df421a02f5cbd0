package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

var (
	// wikiRe matches [[target]] or [[target|description]]. The target
	// cannot contain brackets or the pipe separator.
	wikiRe = regexp.MustCompile(`\[\[([^\]\[|]+)(?:\|([^\]]+))?\]\]`)
	// mdRe matches [description](target).
	mdRe = regexp.MustCompile(`\[([^\]\[]*)\]\(([^()]+)\)`)
)

// FindLinks returns every wiki and markdown reference in text, ordered by
// position. Targets and descriptions are trimmed; references with an empty
// target are dropped.
func FindLinks(text string) []models.LinkReference {
	var out []models.LinkReference

	for _, m := range wikiRe.FindAllStringSubmatchIndex(text, -1) {
		ref, ok := wikiRefAt(text, m)
		if ok {
			out = append(out, ref)
		}
	}
	for _, m := range mdRe.FindAllStringSubmatchIndex(text, -1) {
		ref, ok := markdownRefAt(text, m)
		if ok {
			out = append(out, ref)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// LinkAt returns the reference whose literal span covers the cursor offset.
// The cursor is a byte offset into text; editor state is never consulted.
func LinkAt(text string, cursor int) (models.LinkReference, bool) {
	for _, ref := range FindLinks(text) {
		if ref.Start <= cursor && cursor < ref.End {
			return ref, true
		}
		if ref.Start > cursor {
			break
		}
	}
	return models.LinkReference{}, false
}

func wikiRefAt(text string, m []int) (models.LinkReference, bool) {
	target := strings.TrimSpace(text[m[2]:m[3]])
	if target == "" {
		return models.LinkReference{}, false
	}
	ref := models.LinkReference{
		Kind:   models.LinkWiki,
		Target: target,
		Start:  m[0],
		End:    m[1],
	}
	if len(m) >= 6 && m[4] >= 0 {
		ref.Description = strings.TrimSpace(text[m[4]:m[5]])
	}
	return ref, true
}

func markdownRefAt(text string, m []int) (models.LinkReference, bool) {
	target := strings.TrimSpace(text[m[4]:m[5]])
	if target == "" {
		return models.LinkReference{}, false
	}
	return models.LinkReference{
		Kind:        models.LinkMarkdown,
		Target:      target,
		Description: strings.TrimSpace(text[m[2]:m[3]]),
		Start:       m[0],
		End:         m[1],
	}, true
}
