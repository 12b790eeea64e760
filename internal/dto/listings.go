package dto

// CreateListingRequest represents the payload to create a listing.
// The host is always the authenticated caller; a host supplied in the
// body is ignored.
type CreateListingRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	PropertyType  string  `json:"property_type"` // apartment | villa | cabin | studio | house
	Amenities     string  `json:"amenities"`
	IsAvailable   *bool   `json:"is_available"` // defaults to true
}

// UpdateListingRequest represents fields allowed to update a listing
// All fields are optional; only provided ones will be updated
type UpdateListingRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	Country       *string  `json:"country"`
	PricePerNight *float64 `json:"price_per_night"`
	MaxGuests     *int     `json:"max_guests"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	PropertyType  *string  `json:"property_type"`
	Amenities     *string  `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
}

// ListingResponse represents a listing object in responses. Host is a
// nested read-only user representation.
type ListingResponse struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	Country       string       `json:"country"`
	PricePerNight float64      `json:"price_per_night"`
	MaxGuests     int          `json:"max_guests"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	PropertyType  string       `json:"property_type"`
	Amenities     string       `json:"amenities"`
	IsAvailable   bool         `json:"is_available"`
	Host          UserResponse `json:"host"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

// ListingListResponse envelope
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Count    int               `json:"count"`
}
