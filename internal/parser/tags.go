package parser

import "regexp"

// tagRe matches a tag token: '#' followed by one or more of
// alphanumeric, '-', '_', '/', '+'.
var tagRe = regexp.MustCompile(`#[0-9A-Za-z_/+-]+`)

// FindTags returns the distinct tag tokens in text, in order of first
// occurrence. Matching is against the raw text; tags inside code spans or
// URLs are indistinguishable and matched too. Case-distinct tokens are
// distinct entries.
func FindTags(text string) []string {
	matches := tagRe.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
