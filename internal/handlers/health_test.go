package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"STAYNEST_BACK-END/internal/dto"
)

type fakeProber struct {
	err error
}

func (f fakeProber) Ping(_ context.Context) error { return f.err }

func TestHealthCheck(t *testing.T) {
	h := NewHealthHandler(fakeProber{})

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dto.HealthResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" || resp.Service != "staynest-api" {
		t.Errorf("unexpected payload: %+v", resp)
	}
	if resp.Uptime == "" {
		t.Error("expected an uptime in the payload")
	}
}

func TestReadinessCheck(t *testing.T) {
	h := NewHealthHandler(fakeProber{})

	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dto.HealthResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ready" || resp.Details["postgres"] != "ok" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestReadinessCheckDegraded(t *testing.T) {
	h := NewHealthHandler(fakeProber{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp dto.HealthResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "degraded" {
		t.Errorf("expected degraded status, got %q", resp.Status)
	}
	if resp.Details["postgres"] != "connection refused" {
		t.Errorf("expected the ping failure in details, got %+v", resp.Details)
	}
}
