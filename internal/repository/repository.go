package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
)

// ErrDuplicateUsername is returned when an insert violates the username
// uniqueness constraint. Concurrent duplicate inserts are resolved solely by
// this constraint; there is no pre-check.
var ErrDuplicateUsername = errors.New("username already taken")

// LogQuery describes one exercise-log lookup. HasFrom/HasTo distinguish an
// absent bound from a sentinel bound that matches nothing.
type LogQuery struct {
	UserID  string
	From    time.Time // inclusive lower bound, used when HasFrom
	To      time.Time // inclusive upper bound, used when HasTo
	HasFrom bool
	HasTo   bool
	Limit   int // cap on returned rows; <= 0 means no cap
}

type UserRepo interface {
	Create(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type ExerciseRepo interface {
	Create(ctx context.Context, e models.Exercise) (models.Exercise, error)
	ListByUser(ctx context.Context, q LogQuery) ([]models.Exercise, error)
}

type Repository struct {
	Users     UserRepo
	Exercises ExerciseRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserSQLite(db),
		Exercises: NewExerciseSQLite(db),
	}
}
