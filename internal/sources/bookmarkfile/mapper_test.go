package bookmarkfile

import "testing"

func TestMapEntries(t *testing.T) {
	file := File{
		{
			Category: "Reading",
			Bookmarks: []Entry{
				{Title: "Go Blog", Href: "https://go.dev/blog", Description: "Official Go blog"},
				{Title: "No Href"},             // skipped
				{Href: "http://untitled.com"}, // skipped
			},
		},
		{
			Category: "Tools",
			Bookmarks: []Entry{
				{Title: "Example", Href: "http://example.com"},
			},
		},
	}

	candidates := MapEntries(file)
	if len(candidates) != 2 {
		t.Fatalf("MapEntries() returned %d candidates, want 2", len(candidates))
	}

	if candidates[0].Title != "Go Blog" || candidates[0].URL != "https://go.dev/blog" {
		t.Errorf("MapEntries()[0] = %+v, want Go Blog entry", candidates[0])
	}
	if candidates[0].Description != "Official Go blog" {
		t.Errorf("MapEntries()[0].Description = %q, want the entry description", candidates[0].Description)
	}
	// Entry without a description inherits the category label
	if candidates[1].Description != "Tools" {
		t.Errorf("MapEntries()[1].Description = %q, want %q", candidates[1].Description, "Tools")
	}
}

func TestMapEntriesEmptyFile(t *testing.T) {
	if got := MapEntries(nil); len(got) != 0 {
		t.Errorf("MapEntries(nil) = %v, want empty", got)
	}
}
