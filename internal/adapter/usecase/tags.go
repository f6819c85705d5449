package usecase

import (
	"sort"
	"strings"
)

// NormalizeTag trims, collapses inner whitespace and lower-cases a tag.
func NormalizeTag(in string) string {
	trimmed := strings.TrimSpace(in)
	if trimmed == "" {
		return ""
	}
	collapsed := strings.Join(strings.Fields(trimmed), " ")
	return strings.ToLower(collapsed)
}

// NormalizeTags turns tags into a sorted set of normalised values. The
// result is never nil.
func NormalizeTags(tags []string) []string {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeTag(t)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
