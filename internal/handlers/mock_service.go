package handlers

import (
	"context"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	createResp models.User
	createErr  error
	listResp   []models.User
	listErr    error

	lastCreateUsername string
	createCalls        int
}

func (m *mockUsers) Create(ctx context.Context, username string) (models.User, error) {
	m.createCalls++
	m.lastCreateUsername = username
	return m.createResp, m.createErr
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

type mockExercises struct {
	resp service.EntryDetail
	err  error

	lastUserID string
	lastParams service.NewEntryParams
}

func (m *mockExercises) Add(ctx context.Context, userID string, p service.NewEntryParams) (service.EntryDetail, error) {
	m.lastUserID = userID
	m.lastParams = p
	return m.resp, m.err
}

type mockLogs struct {
	resp service.UserLog
	err  error

	lastUserID string
	lastParams service.LogParams
}

func (m *mockLogs) Get(ctx context.Context, userID string, p service.LogParams) (service.UserLog, error) {
	m.lastUserID = userID
	m.lastParams = p
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
