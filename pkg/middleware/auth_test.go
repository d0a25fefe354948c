package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	FindValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if s.FindValidSessionFunc != nil {
		return s.FindValidSessionFunc(ctx, token)
	}
	return nil, nil
}

func (s *stubSessionRepo) FindValidSessionByUser(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	return nil, nil
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error { return nil }

func (s *stubSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type stubUserRepo struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func validSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func activeUser(id uuid.UUID) *entity.User {
	u := &entity.User{
		Username: "moviefan",
		Email:    "fan@example.com",
		IsActive: true,
	}
	u.ID = id
	return u
}

func TestAuthSession(t *testing.T) {
	userID := uuid.New()

	okSession := &stubSessionRepo{
		FindValidSessionFunc: func(ctx context.Context, token string) (*entity.Session, error) {
			return validSession(userID), nil
		},
	}
	okUser := &stubUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return activeUser(id), nil
		},
	}

	newServer := func(sessions *stubSessionRepo, users *stubUserRepo) (http.Handler, *uuid.UUID, *string) {
		var seenUser uuid.UUID
		var seenToken string
		handler := AuthSession(sessions, users, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
				seenUser = id
			}
			if tok, ok := utils.GetTokenFromContext(r.Context()); ok {
				seenToken = tok
			}
			w.WriteHeader(http.StatusOK)
		}))
		return handler, &seenUser, &seenToken
	}

	t.Run("bearer token resolves user onto context", func(t *testing.T) {
		handler, seenUser, seenToken := newServer(okSession, okUser)

		token := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, *seenUser)
		assert.Equal(t, token, *seenToken)
	})

	t.Run("accepts Token prefix", func(t *testing.T) {
		handler, seenUser, _ := newServer(okSession, okUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token "+uuid.NewString())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, *seenUser)
	})

	t.Run("missing header", func(t *testing.T) {
		handler, _, _ := newServer(okSession, okUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		handler, _, _ := newServer(okSession, okUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired or revoked session", func(t *testing.T) {
		sessions := &stubSessionRepo{
			FindValidSessionFunc: func(ctx context.Context, token string) (*entity.Session, error) {
				return nil, nil
			},
		}
		handler, _, _ := newServer(sessions, okUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+uuid.NewString())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("inactive user rejected", func(t *testing.T) {
		users := &stubUserRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				u := activeUser(id)
				u.IsActive = false
				return u, nil
			},
		}
		handler, _, _ := newServer(okSession, users)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+uuid.NewString())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
