package service

import (
	"context"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

// ---- Repository mocks ----

type mockUserRepo struct {
	createUser models.User
	createErr  error
	listResp   []models.User
	listErr    error
	getResp    *models.User
	getErr     error

	lastCreateUsername string
	lastGetID          string
}

func (m *mockUserRepo) Create(ctx context.Context, username string) (models.User, error) {
	m.lastCreateUsername = username
	return m.createUser, m.createErr
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

type mockExerciseRepo struct {
	createResp models.Exercise
	createErr  error
	echoCreate bool // return the input entry (with an id) instead of createResp
	listResp   []models.Exercise
	listErr    error

	lastCreated models.Exercise
	lastQuery   repository.LogQuery
}

func (m *mockExerciseRepo) Create(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	m.lastCreated = e
	if m.echoCreate {
		e.ID = "generated"
		return e, m.createErr
	}
	return m.createResp, m.createErr
}

func (m *mockExerciseRepo) ListByUser(ctx context.Context, q repository.LogQuery) ([]models.Exercise, error) {
	m.lastQuery = q
	return m.listResp, m.listErr
}
