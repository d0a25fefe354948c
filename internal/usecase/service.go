package usecase

import (
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		User:   NewUserService(repo.User, log),
		Review: NewReviewService(repo, log),
	}
}
