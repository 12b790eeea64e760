// Package database provides PostgreSQL connection management using pgx.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"STAYNEST_BACK-END/internal/config"
)

// NewPool creates and validates a pgxpool connection pool using the
// database section of the configuration. It retries a few times to
// accommodate containers starting up.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "staynest-backend"

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= 5; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			pingErr := pool.Ping(ctx)
			if pingErr == nil {
				return pool, nil
			}
			pool.Close()
			err = fmt.Errorf("ping: %w", pingErr)
		}
		log.Printf("db connect attempt %d/5 failed: %v – retrying in 2s", attempt, err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect to postgres: %w", err)
}

// schema holds the DDL for the four tables. Deleting a listing
// cascades to its bookings and reviews; deleting a booking cascades to
// its reviews.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(150) UNIQUE NOT NULL,
		email VARCHAR(254) UNIQUE NOT NULL,
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		address VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		country VARCHAR(100) NOT NULL,
		price_per_night NUMERIC(10,2) NOT NULL CHECK (price_per_night > 0),
		max_guests INTEGER NOT NULL CHECK (max_guests > 0),
		bedrooms INTEGER NOT NULL DEFAULT 0,
		bathrooms INTEGER NOT NULL DEFAULT 0,
		property_type VARCHAR(20) NOT NULL,
		amenities TEXT NOT NULL DEFAULT '',
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		host_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		listing_id UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		guest_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL CHECK (check_out > check_in),
		total_price NUMERIC(10,2) NOT NULL,
		guests_count INTEGER NOT NULL CHECK (guests_count >= 1),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		special_requests TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		listing_id UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		guest_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_host ON listings(host_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_listing ON bookings(listing_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_guest ON bookings(guest_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_listing ON reviews(listing_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_guest ON reviews(guest_id)`,
}

// Migrate applies the schema. Statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
