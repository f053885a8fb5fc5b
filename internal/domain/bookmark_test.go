package domain

import (
	"errors"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid", title: "Example", wantErr: false},
		{name: "empty", title: "", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "unicode", title: "日本語のタイトル", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("ValidateTitle(%q) error should wrap ErrValidation, got %v", tt.title, err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "http", url: "http://example.com", wantErr: false},
		{name: "https with path", url: "https://example.com/a/b?q=1", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "whitespace only", url: "  ", wantErr: true},
		{name: "no scheme", url: "example.com", wantErr: true},
		{name: "scheme only is parseable", url: "ftp://files.example.com", wantErr: false},
		{name: "unparseable", url: "http://exa mple.com/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("ValidateURL(%q) error should wrap ErrValidation, got %v", tt.url, err)
			}
		})
	}
}

func TestPatchEmpty(t *testing.T) {
	if !(Patch{}).Empty() {
		t.Error("zero Patch should be empty")
	}

	title := "x"
	if (Patch{Title: &title}).Empty() {
		t.Error("Patch with title should not be empty")
	}
}
