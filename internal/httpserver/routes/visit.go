package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/httpserver/handlers"
)

func init() { Register(registerVisit) }

func registerVisit(r chi.Router, d deps.Deps) {
	r.Get("/go/{id}", handlers.Visit(d))
}
