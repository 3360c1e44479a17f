package state

import "strings"

// Filter keeps entries whose name contains every whitespace-separated term
// of query, ignoring case. A term starting with '#' matches any color of the
// theme instead.
func Filter(entries []Entry, query string) []Entry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return entries
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if matchesAll(e, terms) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(e Entry, terms []string) bool {
	name := strings.ToLower(e.Name)
	for _, term := range terms {
		if strings.HasPrefix(term, "#") {
			if !hasColorPrefix(e, term) {
				return false
			}
			continue
		}
		if !strings.Contains(name, term) {
			return false
		}
	}
	return true
}

func hasColorPrefix(e Entry, prefix string) bool {
	for _, hex := range e.Colors() {
		if strings.HasPrefix(hex, prefix) {
			return true
		}
	}
	return false
}
