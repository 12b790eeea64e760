package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/policy"
)

const bookingColumns = `id, listing_id, guest_id, check_in, check_out, total_price, guests_count,
	status, special_requests, created_at, updated_at`

// BookingRepository handles persistence for bookings.
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking.
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.ListingID, b.GuestID, b.CheckIn, b.CheckOut, b.TotalPrice, b.GuestsCount,
		b.Status, b.SpecialRequests, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.ListingID, &b.GuestID, &b.CheckIn, &b.CheckOut, &b.TotalPrice,
		&b.GuestsCount, &b.Status, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]models.Booking, error) {
	defer rows.Close()
	bookings := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// List returns the bookings inside the caller's visible scope, newest
// first.
func (r *BookingRepository) List(ctx context.Context, scope policy.Scope) ([]models.Booking, error) {
	if scope.None {
		return []models.Booking{}, nil
	}
	var (
		rows pgx.Rows
		err  error
	)
	if scope.All {
		rows, err = r.db.Query(ctx,
			`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+bookingColumns+` FROM bookings WHERE guest_id = $1 ORDER BY created_at DESC`,
			*scope.GuestID)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return collectBookings(rows)
}

// ListByListing returns all bookings for a listing regardless of
// guest.
func (r *BookingRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE listing_id = $1 ORDER BY created_at DESC`,
		listingID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by listing: %w", err)
	}
	return collectBookings(rows)
}

// GetByID returns a single booking or ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return scanBooking(r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
}

// Update rewrites the mutable fields of a booking. ListingID, GuestID
// and TotalPrice are fixed at creation.
func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings
		    SET check_in = $1, check_out = $2, guests_count = $3, status = $4,
		        special_requests = $5, total_price = $6, updated_at = $7
		  WHERE id = $8`,
		b.CheckIn, b.CheckOut, b.GuestsCount, b.Status, b.SpecialRequests, b.TotalPrice, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a booking. Reviews cascade in the database.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
