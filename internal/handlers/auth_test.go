package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"STAYNEST_BACK-END/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()

	payload := map[string]interface{}{
		"username":   "john_doe",
		"email":      "John@Example.com",
		"password":   "password123",
		"first_name": "John",
		"last_name":  "Doe",
	}
	rec := env.do(jsonRequest(t, http.MethodPost, "/api/auth/register", payload))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var auth dto.AuthResponse
	decodeBody(t, rec, &auth)
	if auth.Token == "" {
		t.Error("expected a token in the register response")
	}
	if auth.User.Email != "john@example.com" {
		t.Errorf("expected normalized email, got %q", auth.User.Email)
	}

	// Same email again conflicts.
	rec = env.do(jsonRequest(t, http.MethodPost, "/api/auth/register", payload))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}

	rec = env.do(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "john@example.com",
		"password": "password123",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 login, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &auth)
	if auth.Token == "" {
		t.Error("expected a token in the login response")
	}

	rec = env.do(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "john@example.com",
		"password": "wrong",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}

	rec = env.do(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "taken", false)

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"missing password", map[string]interface{}{"username": "a", "email": "a@example.com"}, http.StatusBadRequest},
		{"missing email", map[string]interface{}{"username": "a", "password": "secret1"}, http.StatusBadRequest},
		{"duplicate username", map[string]interface{}{"username": "taken", "email": "new@example.com", "password": "secret1"}, http.StatusConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(jsonRequest(t, http.MethodPost, "/api/auth/register", tc.body))
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRegisterDatabaseErrorIsNotAConflict(t *testing.T) {
	env := newTestEnv()
	env.users.lookupErr = errors.New("connection reset by peer")

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret1",
	}))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the lookup fails, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(env.users.users) != 0 {
		t.Error("no user must be created when the existence check fails")
	}
}

func TestProfile(t *testing.T) {
	env := newTestEnv()
	alice := env.seedUser(t, "alice", false)

	rec := env.do(asUser(jsonRequest(t, http.MethodGet, "/api/auth/profile", nil), alice))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	// Password material never appears in responses.
	body := rec.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "hash") {
		t.Errorf("response leaks credential fields: %s", body)
	}

	var user dto.UserResponse
	if err := json.Unmarshal([]byte(body), &user); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if user.ID != alice.ID.String() || user.Username != "alice" {
		t.Errorf("unexpected profile: %+v", user)
	}

	rec = env.do(jsonRequest(t, http.MethodGet, "/api/auth/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 anonymous, got %d", rec.Code)
	}
}
