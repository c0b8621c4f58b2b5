package models

import "strings"

// Tags are persisted as a single comma-joined column. The round-trip
// convention is: trim every element, drop empties. "a, b ,," lists back as
// ["a", "b"].

// SplitTags expands a stored comma-joined tag string into a list.
func SplitTags(joined string) []string {
	out := []string{}
	for _, t := range strings.Split(joined, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTags collapses a tag list into the stored form, trimming and dropping
// empty elements.
func JoinTags(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ",")
}
