package repository

import (
	"errors"

	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
// The unique index on (movie_id, user_id) is the authoritative guard for
// the one-review-per-user-per-movie rule under concurrent requests.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	User   UserRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
