package handlers

import (
	"fmt"
	"net/http"

	"github.com/marksd/marks/internal/domain"
	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/logger"
)

// Visit handles GET /go/{id}: counts the visit and redirects to the
// bookmark URL.
func Visit(d deps.Deps) http.HandlerFunc {
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

		// Count the visit (best effort, never blocks the redirect)
		if visits, ok := d.Store.IncrementVisits(id); ok {
			b.Visits = visits
			persist(d, b)
		}
		if d.Ranking != nil {
			if _, err := d.Ranking.RecordVisit(r.Context(), id); err != nil {
				d.Logger.Warn("failed to record visit in ranking",
					logger.Uint64("id", id),
					logger.Error(err))
			}
		}

		d.Logger.Info("bookmark visit",
			logger.Uint64("id", id),
			logger.String("url", b.URL))

		http.Redirect(w, r, b.URL, http.StatusFound)
	}
}
