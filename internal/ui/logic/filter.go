package logic

import (
	"strings"

	"petitions/internal/domain"
)

// Matches reports whether a petition's title or body contains the query,
// ignoring case. An empty query matches everything.
func Matches(p domain.Petition, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q)
}

// FilterPetitions recomputes the matching subset of all for query, keeping
// the original relative order. An empty query disables filtering: it
// returns nil and searching=false so callers fall back to the full list.
func FilterPetitions(query string, all []domain.Petition) (matches []domain.Petition, searching bool) {
	if query == "" {
		return nil, false
	}

	matches = make([]domain.Petition, 0)
	for _, p := range all {
		if Matches(p, query) {
			matches = append(matches, p)
		}
	}
	return matches, true
}

// HighlightRanges returns the byte ranges of case-insensitive occurrences of
// query in text, for rendering matched substrings.
func HighlightRanges(text, query string) [][2]int {
	if query == "" {
		return nil
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	if len(lowerText) != len(text) {
		// case folding changed byte lengths; offsets would not line up
		return nil
	}

	var ranges [][2]int
	for start := 0; start < len(lowerText); {
		i := strings.Index(lowerText[start:], lowerQuery)
		if i < 0 {
			break
		}
		from := start + i
		ranges = append(ranges, [2]int{from, from + len(lowerQuery)})
		start = from + len(lowerQuery)
	}
	return ranges
}
