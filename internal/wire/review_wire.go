package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/movie_stats - aggregate rating for a title (public)
	r.Get("/api/reviews/movie_stats", reviewHandler.GetMovieStats)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/reviews - filtered listing, POST /api/reviews - create
		r.Get("/api/reviews", reviewHandler.ListReviews)
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// GET /api/reviews/my_reviews - caller's own reviews
		r.Get("/api/reviews/my_reviews", reviewHandler.GetMyReviews)

		// GET /api/reviews/movie_reviews?movie_id=..&movie_type=.. - one movie's reviews
		r.Get("/api/reviews/movie_reviews", reviewHandler.GetMovieReviews)

		// PUT /api/reviews/{id} - update review (owner only)
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - delete review (owner only)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
