package dto

// CreateReviewRequest represents the payload to create a review.
// Booking and listing are supplied by reference; the guest is always
// the authenticated caller.
type CreateReviewRequest struct {
	BookingID string `json:"booking_id"`
	ListingID string `json:"listing_id"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
}

// UpdateReviewRequest represents fields allowed to update a review
// All fields are optional; only provided ones will be updated
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewResponse represents a review object in responses. Guest,
// booking and listing are nested read-only representations.
type ReviewResponse struct {
	ID        string          `json:"id"`
	Booking   BookingResponse `json:"booking"`
	Listing   ListingResponse `json:"listing"`
	Guest     UserResponse    `json:"guest"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// ReviewListResponse envelope
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Count   int              `json:"count"`
}
