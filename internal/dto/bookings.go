package dto

// CreateBookingRequest represents the payload to create a booking.
// The listing is supplied by reference; the guest is always the
// authenticated caller and total_price is derived server-side.
type CreateBookingRequest struct {
	ListingID       string `json:"listing_id"`
	CheckIn         string `json:"check_in"`  // ISO 8601 format: YYYY-MM-DD
	CheckOut        string `json:"check_out"` // ISO 8601 format: YYYY-MM-DD
	GuestsCount     int    `json:"guests_count"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateBookingRequest represents fields allowed to update a booking
// All fields are optional; only provided ones will be updated
type UpdateBookingRequest struct {
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	GuestsCount     *int    `json:"guests_count"`
	Status          *string `json:"status"` // pending | confirmed | completed | cancelled
	SpecialRequests *string `json:"special_requests"`
}

// BookingResponse represents a booking object in responses. Listing
// and guest are nested read-only representations.
type BookingResponse struct {
	ID              string          `json:"id"`
	Listing         ListingResponse `json:"listing"`
	Guest           UserResponse    `json:"guest"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	TotalPrice      float64         `json:"total_price"`
	GuestsCount     int             `json:"guests_count"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"special_requests"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// BookingListResponse envelope
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}
