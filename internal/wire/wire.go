// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/catalog"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/sentiment"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	catalogClient *catalog.Client,
	classifier sentiment.Classifier,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, catalogClient, classifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, catalogClient, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	catalogClient *catalog.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review, config, logger)

	// Health check endpoint; reports upstream catalogue reachability
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		upstream := "reachable"
		if err := catalogClient.Ping(r.Context()); err != nil {
			upstream = "unreachable"
		}

		utils.ResponseSuccess(w, "ok", map[string]string{
			"app":      config.App.Name,
			"upstream": upstream,
		})
	})

	return r
}
