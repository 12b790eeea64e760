package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice@example.com", true, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "alice@example.com" || !claims.IsStaff {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(uuid.New(), "alice@example.com", false, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := &config.JWTConfig{Secret: "different-secret", AccessTokenTTL: time.Hour}
	if _, err := ValidateToken(token, other); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(uuid.New(), "alice@example.com", false, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token, cfg); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestRequireAuth(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.com", false, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotID uuid.UUID
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(cfg)(next)

	// Valid bearer token passes the identity along.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("expected 200 with handler called, got %d called=%v", rec.Code, called)
	}
	if gotID != userID {
		t.Errorf("expected user id %s on context, got %s", userID, gotID)
	}

	// Missing or malformed headers are rejected before the handler.
	for _, header := range []string{"", "Bearer", "Token " + token, "Bearer bad.token.here"} {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
		if called {
			t.Errorf("header %q: handler must not run", header)
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.com", false, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotID uuid.UUID
	var hadID bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, hadID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := OptionalAuth(cfg)(next)

	// Anonymous requests pass through without an identity.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 anonymous, got %d", rec.Code)
	}
	if hadID {
		t.Error("anonymous request must not carry a user id")
	}

	// A valid token still populates the caller.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !hadID || gotID != userID {
		t.Errorf("expected user id %s on context, got %s (present=%v)", userID, gotID, hadID)
	}
}
