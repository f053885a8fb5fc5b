package bookmarkfile

// Entry is a single bookmark entry in the YAML file.
type Entry struct {
	Title       string `yaml:"title"`
	Href        string `yaml:"href"`
	Description string `yaml:"description"`
}

// Category groups entries under a label. The label is informational only;
// it is folded into the description when an entry has none.
type Category struct {
	Category  string  `yaml:"category"`
	Bookmarks []Entry `yaml:"bookmarks"`
}

// File is the root structure of a bookmark file.
type File []Category
