// Package repository implements all database queries for the
// marketplace. It uses pgx directly (no ORM).
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")
