package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Status is a plain field; transitions are not
// restricted.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// IsValidBookingStatus reports whether s is one of the booking
// statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a guest's reservation of a listing for a date
// range. TotalPrice is derived from the listing's nightly rate at
// creation time and never taken from client input.
type Booking struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ListingID       uuid.UUID `json:"listing_id" db:"listing_id"`
	GuestID         uuid.UUID `json:"guest_id" db:"guest_id"`
	CheckIn         time.Time `json:"check_in" db:"check_in"`
	CheckOut        time.Time `json:"check_out" db:"check_out"`
	TotalPrice      float64   `json:"total_price" db:"total_price"`
	GuestsCount     int       `json:"guests_count" db:"guests_count"`
	Status          string    `json:"status" db:"status"`
	SpecialRequests string    `json:"special_requests" db:"special_requests"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Nights returns the booked number of nights.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
