package domain

import "testing"

func TestMatcherDefault(t *testing.T) {
	m := DefaultMatcher()
	b := Bookmark{ID: 1, Title: "Example Site", URL: "http://example.com"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query matches", query: "", want: true},
		{name: "title substring", query: "ample", want: true},
		{name: "title case-insensitive", query: "EXAMPLE", want: true},
		{name: "url substring", query: "example.com", want: true},
		{name: "no match", query: "missing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(b, tt.query); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatcherCaseSensitive(t *testing.T) {
	m := Matcher{Fields: []MatchField{MatchTitle}, CaseSensitive: true}
	b := Bookmark{Title: "Example", URL: "http://example.com"}

	if !m.Match(b, "Exam") {
		t.Error("Match should find exact-case substring")
	}
	if m.Match(b, "exam") {
		t.Error("case-sensitive Match should not find lowercased substring")
	}
}

func TestMatcherTitleOnly(t *testing.T) {
	m := Matcher{Fields: []MatchField{MatchTitle}}
	b := Bookmark{Title: "Docs", URL: "http://example.com"}

	if m.Match(b, "example") {
		t.Error("title-only Match should ignore the URL")
	}
	if !m.Match(b, "docs") {
		t.Error("title-only Match should find the title")
	}
}

func TestMatcherEmptyFieldsFallback(t *testing.T) {
	m := Matcher{}
	b := Bookmark{Title: "Docs", URL: "http://example.com"}

	if !m.Match(b, "example") {
		t.Error("Matcher with no fields should fall back to title+url")
	}
}

func TestParseMatchFields(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []MatchField
	}{
		{name: "both", names: []string{"title", "url"}, want: []MatchField{MatchTitle, MatchURL}},
		{name: "mixed case and spaces", names: []string{" Title ", "URL"}, want: []MatchField{MatchTitle, MatchURL}},
		{name: "unknown dropped", names: []string{"title", "slug"}, want: []MatchField{MatchTitle}},
		{name: "all unknown falls back", names: []string{"slug"}, want: []MatchField{MatchTitle, MatchURL}},
		{name: "empty falls back", names: nil, want: []MatchField{MatchTitle, MatchURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMatchFields(tt.names)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseMatchFields(%v) = %v, want %v", tt.names, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseMatchFields(%v)[%d] = %v, want %v", tt.names, i, got[i], tt.want[i])
				}
			}
		})
	}
}
