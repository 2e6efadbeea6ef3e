package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/sentiment"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, movieID *string) ([]response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error
	MovieSentiment(ctx context.Context, movieID string) (*response.MovieSentimentResponse, error)
}

type reviewService struct {
	repo       *repository.Repository
	classifier sentiment.Classifier
	log        *zap.Logger
}

func NewReviewService(repo *repository.Repository, classifier sentiment.Classifier, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:       repo,
		classifier: classifier,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Advisory pre-check; the unique index on (movie_id, user_id) is the
	// authoritative guard against concurrent duplicates.
	existing, err := s.repo.Review.FindByUserAndMovie(ctx, userID, req.MovieID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	// Classify synchronously. Classify never fails: a broken upstream
	// degrades to the local heuristic inside the classifier.
	result := s.classifier.Classify(ctx, req.Body)
	label := string(result.Label)
	score := result.Score

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         userID,
		MovieID:        req.MovieID,
		Rating:         req.Rating,
		Body:           req.Body,
		SentimentLabel: &label,
		SentimentScore: &score,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateReview
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", req.MovieID),
		zap.Int("rating", req.Rating),
		zap.String("sentiment", label),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, ErrReviewNotFound
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListReviews(ctx context.Context, movieID *string) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.List(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, ErrReviewNotFound
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}

	changed := false

	if req.Rating != nil {
		review.Rating = *req.Rating
		changed = true
	}

	// Sentiment is recomputed only when the body changes. A rating-only
	// update leaves both sentiment fields untouched.
	if req.Body != nil {
		review.Body = *req.Body

		result := s.classifier.Classify(ctx, review.Body)
		label := string(result.Label)
		score := result.Score
		review.SentimentLabel = &label
		review.SentimentScore = &score

		changed = true
	}

	if !changed {
		resp := response.ReviewToResponse(review)
		return &resp, nil
	}

	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
		zap.Bool("body_changed", req.Body != nil),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		// Nothing with this id can exist, so nothing to delete
		return nil
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		// Deleting an absent review is a silent no-op
		return nil
	}

	if review.UserID != userID {
		return ErrNotReviewOwner
	}

	if err := s.repo.Review.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", review.MovieID),
	)

	return nil
}

// MovieSentiment recomputes the aggregate on every call; reviews change
// between queries, so the result is never cached.
func (s *reviewService) MovieSentiment(ctx context.Context, movieID string) (*response.MovieSentimentResponse, error) {
	reviews, err := s.repo.Review.List(ctx, &movieID)
	if err != nil {
		s.log.Error("Failed to load reviews for sentiment",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("load reviews for sentiment: %w", err)
	}

	agg := AggregateReviews(reviews)

	return &response.MovieSentimentResponse{
		MovieID:          movieID,
		ReviewCount:      agg.Count,
		AverageRating:    agg.AverageRating,
		OverallSentiment: agg.OverallSentiment,
		SentimentScore:   agg.AverageSentimentScore,
	}, nil
}
