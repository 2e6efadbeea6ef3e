package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	MovieID        string    `json:"movie_id"`
	Rating         int       `json:"rating"`
	Body           string    `json:"body"`
	SentimentLabel *string   `json:"sentiment_label"`
	SentimentScore *float64  `json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MovieSentimentResponse is the aggregate over all reviews of one movie.
// Fields stay null when there is nothing to average.
type MovieSentimentResponse struct {
	MovieID          string   `json:"movie_id"`
	ReviewCount      int      `json:"review_count"`
	AverageRating    *float64 `json:"average_rating"`
	OverallSentiment *string  `json:"overall_sentiment"`
	SentimentScore   *float64 `json:"sentiment_score"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID.String(),
		UserID:         review.UserID.String(),
		MovieID:        review.MovieID,
		Rating:         review.Rating,
		Body:           review.Body,
		SentimentLabel: review.SentimentLabel,
		SentimentScore: review.SentimentScore,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}
