package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameMatcher tests doctor names for a case-insensitive substring. Both sides
// are lowercased, not case folded, so "ss" does not match "ß". A Caser is
// stateful, so each matcher owns its own.
type nameMatcher struct {
	caser  cases.Caser
	needle string
}

func newNameMatcher(query string) *nameMatcher {
	caser := cases.Lower(language.Und)
	return &nameMatcher{
		caser:  caser,
		needle: caser.String(query),
	}
}

func (m *nameMatcher) Match(name string) bool {
	return strings.Contains(m.caser.String(name), m.needle)
}

// isBlank reports whether a query should be treated as "no name filter"
func isBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}
