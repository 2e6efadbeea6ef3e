package usecase

import (
	"errors"
)

// Business error kinds, matched with errors.Is at the handler boundary.
// Anything not in this taxonomy is an infrastructure failure and maps to
// an internal server error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateReview    = errors.New("user already reviewed this movie")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNotReviewOwner     = errors.New("review belongs to another user")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
