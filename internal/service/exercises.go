package service

import (
	"context"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

type ExerciseService struct {
	userRepo     repository.UserRepo
	exerciseRepo repository.ExerciseRepo
}

func NewExerciseService(userRepo repository.UserRepo, exerciseRepo repository.ExerciseRepo) *ExerciseService {
	return &ExerciseService{userRepo: userRepo, exerciseRepo: exerciseRepo}
}

// Add validates p, checks that userID references an existing user, persists
// the entry, and returns it in the response shape.
func (s *ExerciseService) Add(ctx context.Context, userID string, p NewEntryParams) (EntryDetail, error) {
	duration, date, err := validateNewEntry(p.Description, p.Duration, p.Date)
	if err != nil {
		return EntryDetail{}, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return EntryDetail{}, err
	}
	if user == nil {
		return EntryDetail{}, ErrUserNotFound
	}

	saved, err := s.exerciseRepo.Create(ctx, models.Exercise{
		UserID:      user.ID,
		Description: p.Description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return EntryDetail{}, err
	}
	return formatEntry(*user, saved), nil
}
