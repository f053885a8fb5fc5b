package handlers

import (
	"net/http"

	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/logger"
)

type reloadResponse struct {
	Triggered bool   `json:"triggered"`
	Detail    string `json:"detail"`
}

// Reload triggers a manual re-import of the YAML bookmark file.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.ImportTrigger == nil {
			writeJSON(w, http.StatusConflict, reloadResponse{
				Triggered: false,
				Detail:    "no bookmark file configured",
			})
			return
		}

		select {
		case d.ImportTrigger <- struct{}{}:
			d.Logger.Info("manual bookmark import triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, reloadResponse{
				Triggered: true,
				Detail:    "import triggered",
			})
		default:
			d.Logger.Warn("bookmark import already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{
				Triggered: false,
				Detail:    "import already in progress",
			})
		}
	}
}
