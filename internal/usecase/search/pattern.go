package search

import "strings"

// likeEscaper neutralizes LIKE/ILIKE metacharacters in user input. The
// backslash must be rewritten first, which NewReplacer handles in one pass.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes the substring-match wildcards in a raw term so it
// only ever matches literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// ContainsPattern wraps an escaped term for "contains" matching.
func ContainsPattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}
