package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/marksd/marks/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool   `json:"ok"`
	BookmarksLoaded *int   `json:"bookmarks_loaded,omitempty"`
	LastImport      string `json:"last_import,omitempty"`
	Mode            string `json:"mode,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Error           string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the status of each component: the store, the optional
// file importer and the optional Redis ranking.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.Store.Len()

		components := map[string]componentStatus{
			"store": {
				OK:              true,
				BookmarksLoaded: &count,
			},
			"importer": importerStatus(d),
			"ranking":  checkRedis(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func importerStatus(d deps.Deps) componentStatus {
	if d.LastImport == nil {
		return componentStatus{
			OK:   true,
			Mode: "disabled",
		}
	}
	last := d.LastImport()
	lastStr := "never"
	if !last.IsZero() {
		lastStr = last.Format("2006-01-02 15:04:05")
	}
	return componentStatus{
		OK:         !last.IsZero(),
		LastImport: lastStr,
	}
}

func determineMode(components map[string]componentStatus) string {
	if ranking, exists := components["ranking"]; exists && !ranking.OK {
		return "degraded" // ranking down, CRUD still fully functional
	}
	return "ok"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "visit-ranking-unavailable",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "visit-ranking-unavailable",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "optimal",
	}
}
