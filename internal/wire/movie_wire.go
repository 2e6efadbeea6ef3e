package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// All catalogue routes are public
	r.Get("/api/movies", movieHandler.ListMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	// Overall sentiment computed from stored reviews
	r.Get("/api/movies/{id}/sentiment", movieHandler.GetMovieSentiment)
}
