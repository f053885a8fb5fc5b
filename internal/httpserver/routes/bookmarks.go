package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", handlers.ListBookmarks(d))
		r.Post("/", handlers.AddBookmark(d))
		r.Get("/{id}", handlers.GetBookmark(d))
		r.Patch("/{id}", handlers.EditBookmark(d))
		r.Delete("/{id}", handlers.DeleteBookmark(d))
	})
	r.Get("/api/ranking", handlers.Ranking(d))
	r.Post("/api/reload", handlers.Reload(d))
}
