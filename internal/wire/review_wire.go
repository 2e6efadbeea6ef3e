package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews?movie_id= - list reviews, newest first
	r.Get("/api/reviews", reviewHandler.ListReviews)

	// GET /api/reviews/{id} - single review
	r.Get("/api/reviews/{id}", reviewHandler.GetReview)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		// POST /api/reviews - create new review (one per user per movie)
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// PATCH /api/reviews/{id} - partial update (owner only)
		r.Patch("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - delete review (owner only)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
