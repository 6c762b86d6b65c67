package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jensfenty/Exercise-Tracker/internal/models"
	"github.com/jensfenty/Exercise-Tracker/internal/service"
)

func TestCreateUserHandler(t *testing.T) {
	users := &mockUsers{createResp: models.User{ID: "u1", Username: "alice"}}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["_id"] != "u1" || out["username"] != "alice" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if users.lastCreateUsername != "alice" {
		t.Fatalf("service saw username %q", users.lastCreateUsername)
	}
}

func TestCreateUserHandler_FormBody(t *testing.T) {
	users := &mockUsers{createResp: models.User{ID: "u1", Username: "alice"}}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("username=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || users.lastCreateUsername != "alice" {
		t.Fatalf("status=%d, service saw %q", w.Code, users.lastCreateUsername)
	}
}

// Missing username comes back as a 200 with an error payload, not a 4xx.
func TestCreateUserHandler_MissingUsername(t *testing.T) {
	users := &mockUsers{createErr: service.ErrUsernameRequired}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with error payload, got %d", w.Code)
	}
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["error"] != "Username is required" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateUserHandler_Duplicate(t *testing.T) {
	users := &mockUsers{createErr: service.ErrUsernameTaken}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with error payload, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Username already taken") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateUserHandler_StoreFailure(t *testing.T) {
	users := &mockUsers{createErr: errors.New("down")}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Server error") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestListUsersHandler(t *testing.T) {
	users := &mockUsers{listResp: []models.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 || out[0]["_id"] != "u1" || out[1]["username"] != "bob" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestListUsersHandler_StoreFailure(t *testing.T) {
	users := &mockUsers{listErr: errors.New("down")}
	r := newTestRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Could not fetch users") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
