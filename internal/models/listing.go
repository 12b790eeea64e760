package models

import (
	"time"

	"github.com/google/uuid"
)

// Valid property types for a listing.
var PropertyTypes = []string{"apartment", "villa", "cabin", "studio", "house"}

// IsValidPropertyType reports whether t is one of the supported
// property types.
func IsValidPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// Listing represents a rental property owned by a host user.
type Listing struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Address       string    `json:"address" db:"address"`
	City          string    `json:"city" db:"city"`
	Country       string    `json:"country" db:"country"`
	PricePerNight float64   `json:"price_per_night" db:"price_per_night"`
	MaxGuests     int       `json:"max_guests" db:"max_guests"`
	Bedrooms      int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms     int       `json:"bathrooms" db:"bathrooms"`
	PropertyType  string    `json:"property_type" db:"property_type"`
	Amenities     string    `json:"amenities" db:"amenities"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	HostID        uuid.UUID `json:"host_id" db:"host_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
