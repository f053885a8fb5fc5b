package bookmarkfile

// Candidate is a bookmark parsed from a file, not yet stored. The store
// assigns IDs; the importer decides between add and update by URL.
type Candidate struct {
	Title       string
	URL         string
	Description string
}

// MapEntries flattens a parsed file into import candidates. Entries
// without a title or href are skipped; an entry with no description
// inherits its category label.
func MapEntries(file File) []Candidate {
	candidates := make([]Candidate, 0)

	for _, category := range file {
		for _, entry := range category.Bookmarks {
			if entry.Title == "" || entry.Href == "" {
				continue
			}

			description := entry.Description
			if description == "" {
				description = category.Category
			}

			candidates = append(candidates, Candidate{
				Title:       entry.Title,
				URL:         entry.Href,
				Description: description,
			})
		}
	}

	return candidates
}
