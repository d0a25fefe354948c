package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, userID string, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error

	GetUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID int64, movieType string) ([]response.ReviewResponse, error)

	// Stats
	GetMovieStats(ctx context.Context, movieTitle string) (*response.MovieStatsResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	movieType := entity.MovieType(req.MovieType)

	// Advisory pre-check; the unique index on (user_id, movie_id, movie_type)
	// settles concurrent creates.
	existingReview, err := s.repo.Review.FindByUserAndMovie(ctx, userUUID, req.MovieID, movieType)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	if existingReview != nil {
		return nil, fmt.Errorf("user already reviewed this movie")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userUUID,
		MovieID:    req.MovieID,
		MovieType:  movieType,
		MovieTitle: req.MovieTitle,
		Rating:     req.Rating,
		Content:    req.Content,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID),
		zap.Int64("movie_id", req.MovieID),
		zap.Int("rating", req.Rating),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) ListReviews(ctx context.Context, userID string, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List reviews validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	filter := repository.ReviewFilter{
		Search:   req.Search,
		Ordering: req.Ordering,
		Limit:    req.Limit(),
		Offset:   req.Offset(),
	}

	if req.MovieID > 0 {
		// Movie scope: everyone's reviews for one movie
		if req.MovieType == "" {
			return nil, fmt.Errorf("validation failed: movie_type: This field is required")
		}
		filter.MovieID = req.MovieID
		filter.MovieType = entity.MovieType(req.MovieType)
	} else {
		// No movie filter: only the caller's own reviews
		filter.UserID = &userUUID
	}

	reviews, err := s.repo.Review.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := s.toResponses(ctx, reviews)

	s.log.Info("Reviews listed",
		zap.Int("count", len(reviews)),
		zap.Int64("total", total),
		zap.Int64("movie_id", req.MovieID),
	)

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.Limit(), total), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	// Owner only. The owning user never changes after creation.
	if review.UserID != userUUID {
		return nil, fmt.Errorf("no permission to modify this review")
	}

	// Partial update: only rating and content ever mutate
	updated := false

	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}

	if req.Content != nil && *req.Content != review.Content {
		review.Content = *req.Content
		updated = true
	}

	if !updated {
		return s.buildReviewResponse(ctx, review), nil
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
		zap.String("user_id", userID),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s not found", reviewID)
	}

	if review.UserID != userUUID {
		return fmt.Errorf("no permission to delete this review")
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
		zap.String("user_id", userID),
	)

	return nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user reviews",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	return s.toResponses(ctx, reviews), nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64, movieType string) ([]response.ReviewResponse, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("validation failed: movie_id: This field is required")
	}
	if movieType != string(entity.MovieTypeMovie) && movieType != string(entity.MovieTypeShow) {
		return nil, fmt.Errorf("validation failed: movie_type: Must be one of: movie, show")
	}

	reviews, err := s.repo.Review.FindByMovie(ctx, movieID, entity.MovieType(movieType))
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.String("movie_type", movieType),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	return s.toResponses(ctx, reviews), nil
}

func (s *reviewService) GetMovieStats(ctx context.Context, movieTitle string) (*response.MovieStatsResponse, error) {
	if movieTitle == "" {
		return nil, fmt.Errorf("validation failed: movie_title: This field is required")
	}

	avgRating, reviewCount, err := s.repo.Review.GetMovieStats(ctx, movieTitle)
	if err != nil {
		s.log.Error("Failed to get movie stats",
			zap.Error(err),
			zap.String("movie_title", movieTitle),
		)
		return nil, fmt.Errorf("get movie stats: %w", err)
	}

	// average_rating stays null when the movie has no reviews
	if avgRating != nil {
		rounded := utils.Round2(*avgRating)
		avgRating = &rounded
	}

	return &response.MovieStatsResponse{
		MovieTitle:    movieTitle,
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) buildReviewResponse(ctx context.Context, review *entity.Review) *response.ReviewResponse {
	resp := response.ReviewToResponse(review, s.username(ctx, review.UserID))
	return &resp
}

func (s *reviewService) toResponses(ctx context.Context, reviews []*entity.Review) []response.ReviewResponse {
	// Review lists are small; usernames are resolved per distinct owner
	usernames := make(map[uuid.UUID]string)

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		username, ok := usernames[review.UserID]
		if !ok {
			username = s.username(ctx, review.UserID)
			usernames[review.UserID] = username
		}
		reviewResponses[i] = response.ReviewToResponse(review, username)
	}

	return reviewResponses
}

func (s *reviewService) username(ctx context.Context, userID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
