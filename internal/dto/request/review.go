package request

type CreateReviewRequest struct {
	MovieID    int64  `json:"movie_id" validate:"required,min=1"`
	MovieType  string `json:"movie_type" validate:"required,oneof=movie show"`
	MovieTitle string `json:"movie_title" validate:"required,max=255"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Content    string `json:"review_content" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Content *string `json:"review_content,omitempty"`
}

// ListReviewsRequest carries the query parameters of GET /api/reviews.
// MovieID and MovieType act as a pair; without them the listing is
// scoped to the calling user.
type ListReviewsRequest struct {
	MovieID   int64  `json:"movie_id"`
	MovieType string `json:"movie_type" validate:"omitempty,oneof=movie show"`
	Search    string `json:"search"`
	Ordering  string `json:"ordering" validate:"omitempty,oneof=rating -rating created_date -created_date"`
	PaginatedRequest
}
