package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

func TestUserCreate_Service(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{createUser: models.User{ID: "u1", Username: "alice"}}
	s := NewUserService(repo)

	u, err := s.Create(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID != "u1" || repo.lastCreateUsername != "alice" {
		t.Fatalf("unexpected result: %+v (repo saw %q)", u, repo.lastCreateUsername)
	}
}

func TestUserCreate_MissingUsername(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{}
	s := NewUserService(repo)

	for _, username := range []string{"", "   "} {
		if _, err := s.Create(context.Background(), username); !errors.Is(err, ErrUsernameRequired) {
			t.Fatalf("username %q: expected ErrUsernameRequired, got %v", username, err)
		}
	}
	if repo.lastCreateUsername != "" {
		t.Fatalf("repo should not be called for invalid input")
	}
}

func TestUserCreate_DuplicateTranslated(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{createErr: repository.ErrDuplicateUsername}
	s := NewUserService(repo)

	_, err := s.Create(context.Background(), "alice")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if !IsClientError(err) {
		t.Fatalf("duplicate must be a client error")
	}
}

func TestUserCreate_StoreFailurePassesThrough(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("down")
	s := NewUserService(&mockUserRepo{createErr: storeErr})

	_, err := s.Create(context.Background(), "alice")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected passthrough, got %v", err)
	}
	if IsClientError(err) {
		t.Fatalf("store failure must not be a client error")
	}
}
