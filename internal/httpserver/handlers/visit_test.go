package handlers

import (
	"net/http"
	"testing"
)

func TestVisitRedirects(t *testing.T) {
	d := testDeps()
	r := testRouter(d)
	doRequest(t, r, http.MethodPost, "/api/bookmarks", `{"title":"Example","url":"http://example.com"}`)

	rec := doRequest(t, r, http.MethodGet, "/go/1", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "http://example.com" {
		t.Errorf("Location = %q, want %q", loc, "http://example.com")
	}
}

func TestVisitCountsVisits(t *testing.T) {
	d := testDeps()
	r := testRouter(d)
	doRequest(t, r, http.MethodPost, "/api/bookmarks", `{"title":"Example","url":"http://example.com"}`)

	for range 3 {
		doRequest(t, r, http.MethodGet, "/go/1", "")
	}

	rec := doRequest(t, r, http.MethodGet, "/api/bookmarks/1", "")
	if b := decodeBookmark(t, rec); b.Visits != 3 {
		t.Errorf("visits = %d, want 3", b.Visits)
	}
}

func TestVisitNotFound(t *testing.T) {
	r := testRouter(testDeps())

	rec := doRequest(t, r, http.MethodGet, "/go/42", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
