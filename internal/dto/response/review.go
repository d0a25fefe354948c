package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"user,omitempty"`
	MovieID     int64     `json:"movie_id"`
	MovieType   string    `json:"movie_type"`
	MovieTitle  string    `json:"movie_title"`
	Rating      int       `json:"rating"`
	Content     string    `json:"review_content"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

type MovieStatsResponse struct {
	MovieTitle    string   `json:"movie_title"`
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID.String(),
		UserID:      review.UserID.String(),
		Username:    username,
		MovieID:     review.MovieID,
		MovieType:   string(review.MovieType),
		MovieTitle:  review.MovieTitle,
		Rating:      review.Rating,
		Content:     review.Content,
		CreatedDate: review.CreatedAt,
		UpdatedDate: review.UpdatedAt,
	}
}
