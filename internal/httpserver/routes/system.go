package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/httpserver/handlers"
)

func init() { Register(registerSystem) }

func registerSystem(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
	r.Get("/readyz", handlers.Readyz(d))
	r.Get("/infra", handlers.Infra(d))
}
