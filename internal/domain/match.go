package domain

import "strings"

// MatchField names a bookmark field the matcher inspects.
type MatchField string

const (
	MatchTitle MatchField = "title"
	MatchURL   MatchField = "url"
)

// Matcher decides whether a bookmark matches a search query.
// The matched fields and case sensitivity are configurable; the default
// is a case-insensitive substring match over both title and URL.
type Matcher struct {
	Fields        []MatchField
	CaseSensitive bool
}

// DefaultMatcher returns the default matching behavior.
func DefaultMatcher() Matcher {
	return Matcher{Fields: []MatchField{MatchTitle, MatchURL}}
}

// ParseMatchFields converts config field names into MatchFields.
// Unknown names are dropped; an empty result falls back to the default set.
func ParseMatchFields(names []string) []MatchField {
	fields := make([]MatchField, 0, len(names))
	for _, name := range names {
		switch MatchField(strings.ToLower(strings.TrimSpace(name))) {
		case MatchTitle:
			fields = append(fields, MatchTitle)
		case MatchURL:
			fields = append(fields, MatchURL)
		}
	}
	if len(fields) == 0 {
		return []MatchField{MatchTitle, MatchURL}
	}
	return fields
}

// Match reports whether b contains query as a substring in any of the
// configured fields. An empty query matches everything.
func (m Matcher) Match(b Bookmark, query string) bool {
	if query == "" {
		return true
	}
	if !m.CaseSensitive {
		query = strings.ToLower(query)
	}
	for _, field := range m.fields() {
		var value string
		switch field {
		case MatchTitle:
			value = b.Title
		case MatchURL:
			value = b.URL
		default:
			continue
		}
		if !m.CaseSensitive {
			value = strings.ToLower(value)
		}
		if strings.Contains(value, query) {
			return true
		}
	}
	return false
}

func (m Matcher) fields() []MatchField {
	if len(m.Fields) == 0 {
		return []MatchField{MatchTitle, MatchURL}
	}
	return m.Fields
}
