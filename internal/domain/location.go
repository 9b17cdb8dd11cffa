package domain

import "strings"

// MatchesLocation reports whether the camp's address contains query as a
// case-insensitive substring. No tokenizing or fuzzy matching — "karol bagh"
// matches "Hanuman Mandir, Karol Bagh, New Delhi".
//
// Callers must not pass a blank query; an empty or whitespace-only city
// filter is treated as "no filter" upstream and never reaches this function.
func MatchesLocation(c Camp, query string) bool {
	return strings.Contains(strings.ToLower(c.Address), strings.ToLower(query))
}
