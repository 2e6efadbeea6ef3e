package entity

import (
	"github.com/google/uuid"
)

// Review is one user's opinion of one movie. MovieID references the
// external catalogue and is not validated against it. Sentiment fields
// stay NULL until the body has been classified.
type Review struct {
	Base
	UserID         uuid.UUID `db:"user_id"`
	MovieID        string    `db:"movie_id"`
	Rating         int       `db:"rating"` // 1-5
	Body           string    `db:"body"`
	SentimentLabel *string   `db:"sentiment_label"`
	SentimentScore *float64  `db:"sentiment_score"`
}
