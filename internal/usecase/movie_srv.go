package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/catalog"

	"go.uber.org/zap"
)

// CatalogAPI is the slice of the catalogue client the movie service needs.
type CatalogAPI interface {
	Films(ctx context.Context) ([]catalog.Film, error)
}

type MovieService interface {
	ListMovies(ctx context.Context, req *request.MovieListRequest) (*response.MovieListResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieDetail, error)
}

type movieService struct {
	catalog CatalogAPI
	log     *zap.Logger
}

func NewMovieService(catalogClient CatalogAPI, log *zap.Logger) MovieService {
	return &movieService{
		catalog: catalogClient,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req *request.MovieListRequest) (*response.MovieListResponse, error) {
	films, err := s.catalog.Films(ctx)
	if err != nil {
		s.log.Error("Failed to fetch catalogue", zap.Error(err))
		return nil, fmt.Errorf("fetch catalogue: %w", err)
	}

	// Filter: text search over title, original title and synopsis
	if req.Query != "" {
		needle := strings.ToLower(req.Query)
		filtered := films[:0:0]
		for _, film := range films {
			if strings.Contains(strings.ToLower(film.Title), needle) ||
				strings.Contains(strings.ToLower(film.OriginalTitle), needle) ||
				strings.Contains(strings.ToLower(film.Description), needle) {
				filtered = append(filtered, film)
			}
		}
		films = filtered
	}

	// Filter: release year
	if req.Year != 0 {
		year := strconv.Itoa(req.Year)
		filtered := films[:0:0]
		for _, film := range films {
			if film.ReleaseDate == year {
				filtered = append(filtered, film)
			}
		}
		films = filtered
	}

	sortFilms(films, req.Sort)

	// Pagination over the filtered slice
	total := len(films)
	start := (req.Page - 1) * req.Limit
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}

	items := make([]response.MovieSummary, 0, end-start)
	for _, film := range films[start:end] {
		items = append(items, response.MovieSummary{
			ID:        film.ID,
			Title:     film.Title,
			Year:      film.ReleaseDate,
			Runtime:   film.RunningTime,
			PosterURL: film.Image,
			Synopsis:  film.Description,
			Score:     film.RTScore,
			Director:  film.Director,
		})
	}

	resp := &response.MovieListResponse{
		Items: items,
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	}

	if end < total {
		year := ""
		if req.Year != 0 {
			year = strconv.Itoa(req.Year)
		}
		next := fmt.Sprintf("/api/movies?q=%s&year=%s&sort=%s&page=%d&limit=%d",
			req.Query, year, req.Sort, req.Page+1, req.Limit)
		resp.Next = &next
	}

	return resp, nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieDetail, error) {
	films, err := s.catalog.Films(ctx)
	if err != nil {
		s.log.Error("Failed to fetch catalogue", zap.Error(err))
		return nil, fmt.Errorf("fetch catalogue: %w", err)
	}

	for _, film := range films {
		if film.ID == movieID {
			return &response.MovieDetail{
				ID:            film.ID,
				Title:         film.Title,
				OriginalTitle: film.OriginalTitle,
				Year:          film.ReleaseDate,
				Runtime:       film.RunningTime,
				PosterURL:     film.Image,
				BannerURL:     film.MovieBanner,
				Synopsis:      film.Description,
				Score:         film.RTScore,
				Director:      film.Director,
				Producer:      film.Producer,
				URL:           film.URL,
			}, nil
		}
	}

	return nil, ErrMovieNotFound
}

// sortFilms orders films in place by "title|year|score" with an optional
// ":asc" or ":desc" suffix. Unknown keys sort by title.
func sortFilms(films []catalog.Film, sortSpec string) {
	if sortSpec == "" {
		sortSpec = "title:asc"
	}

	key, direction, _ := strings.Cut(sortSpec, ":")
	key = strings.ToLower(key)
	reverse := strings.EqualFold(direction, "desc")

	less := func(a, b catalog.Film) bool {
		switch key {
		case "year":
			return numeric(a.ReleaseDate) < numeric(b.ReleaseDate)
		case "score", "rating":
			return numeric(a.RTScore) < numeric(b.RTScore)
		default:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}

	sort.SliceStable(films, func(i, j int) bool {
		if reverse {
			return less(films[j], films[i])
		}
		return less(films[i], films[j])
	})
}

func numeric(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
