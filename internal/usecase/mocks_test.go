package usecase

import (
	"context"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"

	"github.com/google/uuid"
)

// mockUserRepository is a mock implementation of repository.UserRepository.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// mockSessionRepository is a mock implementation of repository.SessionRepository.
type mockSessionRepository struct {
	CreateFunc                 func(ctx context.Context, session *entity.Session) error
	FindValidSessionFunc       func(ctx context.Context, token string) (*entity.Session, error)
	FindValidSessionByUserFunc func(ctx context.Context, userID uuid.UUID) (*entity.Session, error)
	RevokeFunc                 func(ctx context.Context, token string) error
	RevokeAllUserSessionsFunc  func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.FindValidSessionFunc != nil {
		return m.FindValidSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepository) FindValidSessionByUser(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	if m.FindValidSessionByUserFunc != nil {
		return m.FindValidSessionByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSessionRepository) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

func (m *mockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllUserSessionsFunc != nil {
		return m.RevokeAllUserSessionsFunc(ctx, userID)
	}
	return nil
}

// mockReviewRepository is a mock implementation of repository.ReviewRepository.
type mockReviewRepository struct {
	CreateFunc             func(ctx context.Context, review *entity.Review) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListFunc               func(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error)
	CountFunc              func(ctx context.Context, filter repository.ReviewFilter) (int64, error)
	FindByMovieFunc        func(ctx context.Context, movieID int64, movieType entity.MovieType) ([]*entity.Review, error)
	FindByUserIDFunc       func(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
	FindByUserAndMovieFunc func(ctx context.Context, userID uuid.UUID, movieID int64, movieType entity.MovieType) (*entity.Review, error)
	UpdateFunc             func(ctx context.Context, review *entity.Review) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	GetMovieStatsFunc      func(ctx context.Context, movieTitle string) (*float64, int64, error)
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReviewRepository) Count(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockReviewRepository) FindByMovie(ctx context.Context, movieID int64, movieType entity.MovieType) ([]*entity.Review, error) {
	if m.FindByMovieFunc != nil {
		return m.FindByMovieFunc(ctx, movieID, movieType)
	}
	return nil, nil
}

func (m *mockReviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockReviewRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64, movieType entity.MovieType) (*entity.Review, error) {
	if m.FindByUserAndMovieFunc != nil {
		return m.FindByUserAndMovieFunc(ctx, userID, movieID, movieType)
	}
	return nil, nil
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepository) GetMovieStats(ctx context.Context, movieTitle string) (*float64, int64, error) {
	if m.GetMovieStatsFunc != nil {
		return m.GetMovieStatsFunc(ctx, movieTitle)
	}
	return nil, 0, nil
}
