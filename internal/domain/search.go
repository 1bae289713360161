package domain

import "strings"

// Matches is the global-filter predicate shared by every table: true when any
// field contains term case-insensitively. Empty/whitespace terms match
// everything. Missing optional fields arrive as "" and simply never match.
func Matches(fields []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Searchable is implemented by entities that expose a fixed list of string
// fields for the global filter. A malformed row returns an empty list, so it
// never matches and never panics.
type Searchable interface {
	SearchFields() []string
}

// MatchesEntity applies the global filter to anything; non-Searchable values
// are treated as non-matching rather than failing the whole view.
func MatchesEntity(v any, term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	s, ok := v.(Searchable)
	if !ok {
		return false
	}
	return Matches(s.SearchFields(), term)
}
