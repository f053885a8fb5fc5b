package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Bookmark is a saved web link.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// Assigned from a monotonic counter at creation time and never reused,
	// even after the bookmark is deleted.
	ID uint64 `json:"id"`

	// ─────────────────────────────
	// User-editable fields
	// ─────────────────────────────

	// Title is the display label. Always non-empty.
	Title string `json:"title"`

	// URL is the full link target. Always non-empty and carries a scheme.
	// Example: https://example.com/article
	URL string `json:"url"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is when the bookmark was added.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time `json:"updated_at"`

	// Visits counts how many times the bookmark was opened through
	// the redirect endpoint.
	Visits int64 `json:"visits"`
}

// Patch describes a partial edit. Nil fields are left unchanged.
type Patch struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.URL == nil && p.Description == nil
}

// ValidateTitle checks that a title is usable.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return nil
}

// ValidateURL checks that a raw URL is non-empty and carries a scheme.
// Anything with a scheme is accepted; we do not resolve or fetch it.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: url must not be empty", ErrValidation)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: url %q is not parseable", ErrValidation, raw)
	}
	if u.Scheme == "" {
		return fmt.Errorf("%w: url %q has no scheme", ErrValidation, raw)
	}
	return nil
}
