package handlers

import (
	"net/http"
	"strconv"

	"github.com/marksd/marks/internal/domain"
	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/logger"
)

const defaultRankingLimit = 10

type rankedBookmark struct {
	domain.Bookmark
	RankedVisits int64 `json:"ranked_visits"`
}

type rankingResponse struct {
	Count     int              `json:"count"`
	Bookmarks []rankedBookmark `json:"bookmarks"`
}

// Ranking handles GET /api/ranking: the most-visited bookmarks, backed by
// the Redis sorted set. Returns 503 when Redis is not configured.
func Ranking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Ranking == nil {
			writeJSON(w, http.StatusServiceUnavailable,
				errorResponse{Error: "ranking disabled: redis not configured"})
			return
		}

		limit := defaultRankingLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		top, err := d.Ranking.TopVisited(r.Context(), limit)
		if err != nil {
			d.Logger.Error("failed to read ranking", logger.Error(err))
			writeJSON(w, http.StatusBadGateway,
				errorResponse{Error: "ranking unavailable"})
			return
		}

		ranked := make([]rankedBookmark, 0, len(top))
		for _, entry := range top {
			b, ok := d.Store.Get(entry.ID)
			if !ok {
				// Deleted bookmark still in the set; the janitor will
				// prune it.
				continue
			}
			ranked = append(ranked, rankedBookmark{Bookmark: b, RankedVisits: entry.Visits})
		}

		writeJSON(w, http.StatusOK, rankingResponse{
			Count:     len(ranked),
			Bookmarks: ranked,
		})
	}
}
