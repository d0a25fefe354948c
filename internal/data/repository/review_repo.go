package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ReviewFilter narrows List queries. A nil UserID with a zero MovieID is
// not valid; callers always scope by movie or by owner.
type ReviewFilter struct {
	UserID    *uuid.UUID
	MovieID   int64
	MovieType entity.MovieType
	Search    string
	Ordering  string // "rating", "-rating", "created_date", "-created_date"
	Limit     int
	Offset    int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	Count(ctx context.Context, filter ReviewFilter) (int64, error)
	FindByMovie(ctx context.Context, movieID int64, movieType entity.MovieType) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64, movieType entity.MovieType) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetMovieStats(ctx context.Context, movieTitle string) (*float64, int64, error) // avg rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, movie_id, movie_type, movie_title, rating, content, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.MovieType,
		&review.MovieTitle,
		&review.Rating,
		&review.Content,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, movie_type, movie_title,
		                     rating, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.MovieType,
		review.MovieTitle,
		review.Rating,
		review.Content,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// The unique index on (user_id, movie_id, movie_type) is the
		// authoritative rule; the service pre-check only races ahead of it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user already reviewed this movie")
		}

		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %s: %w",
			review.MovieID, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

// buildFilter translates a ReviewFilter into a WHERE clause and its args.
func buildFilter(filter ReviewFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.MovieID > 0 {
		args = append(args, filter.MovieID)
		conds = append(conds, fmt.Sprintf("movie_id = $%d", len(args)))
		args = append(args, filter.MovieType)
		conds = append(conds, fmt.Sprintf("movie_type = $%d", len(args)))
	} else if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(movie_title ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	return where, args
}

// orderClause maps the public ordering names onto columns. Anything
// unrecognized falls back to newest-first.
func orderClause(ordering string) string {
	switch ordering {
	case "rating":
		return "ORDER BY rating ASC, created_at DESC"
	case "-rating":
		return "ORDER BY rating DESC, created_at DESC"
	case "created_date":
		return "ORDER BY created_at ASC"
	default:
		return "ORDER BY created_at DESC"
	}
}

func (r *reviewRepository) List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error) {
	where, args := buildFilter(filter)

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)

	query := fmt.Sprintf(`SELECT %s FROM reviews %s %s LIMIT $%d OFFSET $%d`,
		reviewColumns, where, orderClause(filter.Ordering), limitPos, limitPos+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("movie_id", filter.MovieID),
			zap.String("search", filter.Search),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context, filter ReviewFilter) (int64, error) {
	where, args := buildFilter(filter)
	query := `SELECT COUNT(*) FROM reviews ` + where

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) FindByMovie(ctx context.Context, movieID int64, movieType entity.MovieType) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE movie_id = $1 AND movie_type = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID, movieType)
	if err != nil {
		r.log.Error("Failed to find reviews by movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.String("movie_type", string(movieType)),
		)
		return nil, fmt.Errorf("find reviews by movie %d/%s: %w", movieID, movieType, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64, movieType entity.MovieType) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2 AND movie_type = $3
		LIMIT 1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, userID, movieID, movieType))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %s and movie %d: %w",
			userID.String(), movieID, err)
	}

	return review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, content = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Content,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) GetMovieStats(ctx context.Context, movieTitle string) (*float64, int64, error) {
	query := `
		SELECT AVG(rating), COUNT(*)
		FROM reviews
		WHERE LOWER(movie_title) = LOWER($1)
	`

	var avgRating *float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, movieTitle).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get movie stats",
			zap.Error(err),
			zap.String("movie_title", movieTitle),
		)
		return nil, 0, fmt.Errorf("get movie stats for %q: %w", movieTitle, err)
	}

	return avgRating, reviewCount, nil
}
