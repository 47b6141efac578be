package vocab

import (
	"sort"
	"strings"
)

// SplitTags returns the whitespace-separated tokens of a tag string.
func SplitTags(tags string) []string {
	return strings.Fields(tags)
}

// MergeTags returns the sorted, deduplicated union of the tokens of every
// tag string, joined by single spaces.
func MergeTags(tagStrings ...string) string {
	seen := make(map[string]struct{})
	for _, s := range tagStrings {
		for _, tok := range SplitTags(s) {
			seen[tok] = struct{}{}
		}
	}

	merged := make([]string, 0, len(seen))
	for tok := range seen {
		merged = append(merged, tok)
	}
	sort.Strings(merged)
	return strings.Join(merged, " ")
}
