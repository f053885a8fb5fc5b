package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/marksd/marks/internal/domain"
	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/logger"
)

type addRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type listResponse struct {
	Count     int               `json:"count"`
	Bookmarks []domain.Bookmark `json:"bookmarks"`
}

// AddBookmark handles POST /api/bookmarks.
func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d.Logger, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
			return
		}

		b, err := d.Store.Add(req.Title, req.URL, req.Description)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		persist(d, b)

		d.Logger.Info("bookmark added",
			logger.Uint64("id", b.ID),
			logger.String("title", b.Title))

		writeJSON(w, http.StatusCreated, b)
	}
}

// ListBookmarks handles GET /api/bookmarks. The optional q parameter
// filters by substring match; without it all bookmarks are returned in
// insertion order.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		marks := make([]domain.Bookmark, 0)
		for b := range d.Store.Search(query) {
			marks = append(marks, b)
		}

		if query != "" {
			d.Logger.Debug("bookmark search",
				logger.String("query", query),
				logger.Int("hits", len(marks)))
		}

		writeJSON(w, http.StatusOK, listResponse{
			Count:     len(marks),
			Bookmarks: marks,
		})
	}
}

// GetBookmark handles GET /api/bookmarks/{id}.
func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookmarkID(r)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		b, ok := d.Store.Get(id)
		if !ok {
			writeError(w, d.Logger, fmt.Errorf("%w: id %d", domain.ErrNotFound, id))
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}

// EditBookmark handles PATCH /api/bookmarks/{id}. Only fields present in
// the body are changed.
func EditBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookmarkID(r)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		var patch domain.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, d.Logger, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
			return
		}
		if patch.Empty() {
			writeError(w, d.Logger, fmt.Errorf("%w: no fields to update", domain.ErrValidation))
			return
		}

		b, err := d.Store.Edit(id, patch)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		persist(d, b)

		d.Logger.Info("bookmark edited",
			logger.Uint64("id", b.ID))

		writeJSON(w, http.StatusOK, b)
	}
}

// DeleteBookmark handles DELETE /api/bookmarks/{id}. The id is retired
// permanently.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookmarkID(r)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := d.Store.Delete(id); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if d.Bolt != nil {
			if err := d.Bolt.DeleteBookmark(id); err != nil {
				d.Logger.Warn("failed to delete persisted bookmark",
					logger.Uint64("id", id),
					logger.Error(err))
			}
		}

		d.Logger.Info("bookmark deleted",
			logger.Uint64("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}

// bookmarkID extracts the {id} route parameter. Malformed ids behave like
// missing ones.
func bookmarkID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", domain.ErrNotFound, raw)
	}
	return id, nil
}

// persist mirrors a mutated record into the durable store (best effort;
// the memory store stays authoritative at runtime).
func persist(d deps.Deps, b domain.Bookmark) {
	if d.Bolt == nil {
		return
	}
	if err := d.Bolt.SaveBookmark(&b); err != nil {
		d.Logger.Warn("failed to persist bookmark",
			logger.Uint64("id", b.ID),
			logger.Error(err))
	}
}
