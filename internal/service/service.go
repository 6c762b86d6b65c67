package service

import (
	"context"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

// NewEntryParams carries the raw request fields for one exercise entry.
// Duration and Date arrive as strings; the validation layer coerces them.
type NewEntryParams struct {
	Description string
	Duration    string
	Date        string // optional, "YYYY-MM-DD" or RFC3339
}

// LogParams carries the raw query-string filters for a log lookup.
type LogParams struct {
	From  string // optional, inclusive lower bound
	To    string // optional, inclusive upper bound
	Limit string // optional, cap on returned entries
}

// Users manages account registration and lookup.
type Users interface {
	Create(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Exercises records validated entries for existing users.
type Exercises interface {
	Add(ctx context.Context, userID string, p NewEntryParams) (EntryDetail, error)
}

// Logs exposes the filtered, date-ordered exercise log of a user.
type Logs interface {
	Get(ctx context.Context, userID string, p LogParams) (UserLog, error)
}

// Service aggregates all sub-services.
type Service struct {
	Users
	Exercises
	Logs
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Users:     NewUserService(repos.Users),
		Exercises: NewExerciseService(repos.Users, repos.Exercises),
		Logs:      NewLogService(repos.Users, repos.Exercises),
	}
}
