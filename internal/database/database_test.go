package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"STAYNEST_BACK-END/internal/config"
)

func TestNewPoolReportsPingCause(t *testing.T) {
	if testing.Short() {
		t.Skip("dials an unreachable database with retries")
	}

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:        "127.0.0.1",
			Port:        "1", // nothing listens here
			User:        "staynest",
			Password:    "staynest",
			Name:        "staynest",
			SSLMode:     "disable",
			MaxConns:    1,
			MaxLifetime: time.Minute,
			ConnTimeout: time.Second,
		},
	}

	pool, err := NewPool(context.Background(), cfg)
	if pool != nil {
		pool.Close()
		t.Fatal("expected no pool for an unreachable database")
	}
	if err == nil {
		t.Fatal("expected an error for an unreachable database")
	}

	if !strings.Contains(err.Error(), "ping") {
		t.Errorf("expected the ping stage in the error, got %q", err)
	}
	// The underlying dial failure must survive in the wrap chain.
	cause := errors.Unwrap(errors.Unwrap(err))
	if cause == nil {
		t.Errorf("connection failure cause lost from error chain: %q", err)
	}
}
