package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-reviews/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockUserService struct {
	GetProfileFunc func(ctx context.Context, userID string) (*response.UserResponse, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return &response.UserResponse{}, nil
}

func TestUserHandler_GetCurrentUser(t *testing.T) {
	newRouter := func(svc *mockUserService) *chi.Mux {
		h := NewUserHandler(svc, zap.NewNop())
		r := chi.NewRouter()
		r.Get("/api/auth/user", h.GetCurrentUser)
		return r
	}

	t.Run("returns the session user profile", func(t *testing.T) {
		userID := uuid.New()
		router := newRouter(&mockUserService{
			GetProfileFunc: func(ctx context.Context, id string) (*response.UserResponse, error) {
				assert.Equal(t, userID.String(), id)
				return &response.UserResponse{ID: id, Username: "moviefan", Email: "fan@example.com"}, nil
			},
		})

		req := authedRequest(http.MethodGet, "/api/auth/user", nil, userID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"moviefan"`)
	})

	t.Run("no session maps to 401", func(t *testing.T) {
		router := newRouter(&mockUserService{})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing account maps to 404", func(t *testing.T) {
		router := newRouter(&mockUserService{
			GetProfileFunc: func(ctx context.Context, id string) (*response.UserResponse, error) {
				return nil, errors.New("user not found")
			},
		})

		req := authedRequest(http.MethodGet, "/api/auth/user", nil, uuid.New())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
