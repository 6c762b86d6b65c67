package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create registers a new user. Duplicate usernames are rejected by the
// store's uniqueness constraint, never by a racy pre-check.
func (s *UserService) Create(ctx context.Context, username string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, ErrUsernameRequired
	}
	u, err := s.userRepo.Create(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}
