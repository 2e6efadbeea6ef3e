package adaptor

import (
	"net/http"
	"strconv"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxMoviePageSize = 50

type MovieHandler struct {
	movies  usecase.MovieService
	reviews usecase.ReviewService
	log     *zap.Logger
}

func NewMovieHandler(movies usecase.MovieService, reviews usecase.ReviewService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		movies:  movies,
		reviews: reviews,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /api/movies (public)
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.MovieListRequest{
		Query: query.Get("q"),
		Sort:  query.Get("sort"),
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}

	if year := query.Get("year"); year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year parameter", nil)
			return
		}
		req.Year = parsed
	}

	if req.Limit > maxMoviePageSize {
		req.Limit = maxMoviePageSize
	}

	movies, err := h.movies.ListMovies(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovie handles GET /api/movies/{id} (public)
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.movies.GetMovie(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetMovieSentiment handles GET /api/movies/{id}/sentiment (public)
func (h *MovieHandler) GetMovieSentiment(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	summary, err := h.reviews.MovieSentiment(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie sentiment")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
