package service

import (
	"context"

	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

type LogService struct {
	userRepo     repository.UserRepo
	exerciseRepo repository.ExerciseRepo
}

func NewLogService(userRepo repository.UserRepo, exerciseRepo repository.ExerciseRepo) *LogService {
	return &LogService{userRepo: userRepo, exerciseRepo: exerciseRepo}
}

// Get returns userID's log filtered by p, ascending by date.
func (s *LogService) Get(ctx context.Context, userID string, p LogParams) (UserLog, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return UserLog{}, err
	}
	if user == nil {
		return UserLog{}, ErrUserNotFound
	}

	entries, err := s.exerciseRepo.ListByUser(ctx, buildLogQuery(user.ID, p))
	if err != nil {
		return UserLog{}, err
	}
	return formatLog(*user, entries), nil
}
