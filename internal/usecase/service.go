package usecase

import (
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/sentiment"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Movie  MovieService
	Review ReviewService
}

func NewService(
	repo *repository.Repository,
	catalogClient CatalogAPI,
	classifier sentiment.Classifier,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Movie:  NewMovieService(catalogClient, log),
		Review: NewReviewService(repo, classifier, log),
	}
}
