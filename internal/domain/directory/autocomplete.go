package directory

import (
	"go-doctor-directory/internal/domain/entity"
)

// MaxSuggestions bounds the autocomplete list
const MaxSuggestions = 3

// Suggest returns up to MaxSuggestions doctors, in list order, whose name
// contains query case-insensitively. A blank query yields no suggestions.
func Suggest(doctors []entity.Doctor, query string) []entity.Doctor {
	suggestions := make([]entity.Doctor, 0, MaxSuggestions)
	if isBlank(query) {
		return suggestions
	}

	matcher := newNameMatcher(query)
	for _, doctor := range doctors {
		if !matcher.Match(doctor.Name) {
			continue
		}
		suggestions = append(suggestions, doctor)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions
}

// SearchCommit is emitted when the autocomplete control hands a search query
// to the directory.
type SearchCommit struct {
	Query string
}

// Autocomplete is the state of the search box and its suggestion list.
// Transitions return a new value and, when the search should be applied, a
// commit.
type Autocomplete struct {
	Query       string
	Suggestions []entity.Doctor
	Visible     bool
}

// Input records typed text. A blank value hides the list and commits an empty
// search so the directory clears its name filter.
func (a Autocomplete) Input(doctors []entity.Doctor, value string) (Autocomplete, *SearchCommit) {
	if isBlank(value) {
		return Autocomplete{Query: value}, &SearchCommit{Query: ""}
	}

	return Autocomplete{
		Query:       value,
		Suggestions: Suggest(doctors, value),
		Visible:     true,
	}, nil
}

// Focus reopens the list if there is something to show
func (a Autocomplete) Focus() Autocomplete {
	a.Visible = a.Query != "" && len(a.Suggestions) > 0
	return a
}

// Select takes a suggestion: the query becomes the full name, the list closes
// and the name is committed.
func (a Autocomplete) Select(name string) (Autocomplete, *SearchCommit) {
	a.Query = name
	a.Visible = false
	return a, &SearchCommit{Query: name}
}

// Submit commits the raw query verbatim and closes the list
func (a Autocomplete) Submit() (Autocomplete, *SearchCommit) {
	a.Visible = false
	return a, &SearchCommit{Query: a.Query}
}

// DismissOutside closes the list after a pointer interaction outside both the
// input and the list.
func (a Autocomplete) DismissOutside() Autocomplete {
	a.Visible = false
	return a
}

// ShowsSuggestions reports whether the list is rendered
func (a Autocomplete) ShowsSuggestions() bool {
	return a.Visible && len(a.Suggestions) > 0
}
