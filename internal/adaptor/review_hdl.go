package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/reviews (protected)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.ListReviewsRequest{
		MovieID:   utils.ParseInt64(query.Get("movie_id")),
		MovieType: query.Get("movie_type"),
		Search:    query.Get("search"),
		Ordering:  query.Get("ordering"),
	}
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	reviews, err := h.service.ListReviews(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /api/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// UpdateReview handles PUT /api/reviews/{id} (protected, owner only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), reviewID, userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/reviews/{id} (protected, owner only)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID, userID.String()); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

// GetMyReviews handles GET /api/reviews/my_reviews (protected)
func (h *ReviewHandler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get my reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetMovieReviews handles GET /api/reviews/movie_reviews (protected)
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	movieID := utils.ParseInt64(query.Get("movie_id"))
	movieType := query.Get("movie_type")

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID, movieType)
	if err != nil {
		h.handleServiceError(w, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetMovieStats handles GET /api/reviews/movie_stats (public)
func (h *ReviewHandler) GetMovieStats(w http.ResponseWriter, r *http.Request) {
	movieTitle := r.URL.Query().Get("movie_title")

	stats, err := h.service.GetMovieStats(r.Context(), movieTitle)
	if err != nil {
		h.handleServiceError(w, err, "get movie stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// handleServiceError handles errors for review operations
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "no permission"):
		h.log.Warn(operation+" failed - not owner",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "already reviewed"):
		h.log.Warn(operation+" failed - already reviewed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
