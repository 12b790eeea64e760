package models

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a guest's rating of a listing, attached to one of
// their bookings. The schema does not force one review per booking.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookingID uuid.UUID `json:"booking_id" db:"booking_id"`
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"`
	GuestID   uuid.UUID `json:"guest_id" db:"guest_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
