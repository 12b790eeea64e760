package handlers

import (
	"context"

	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/policy"
)

// The handler layer depends on these narrow store interfaces rather
// than the concrete pgx repositories, so handlers can be tested with
// in-memory fakes.

// UserStore is the persistence surface for users.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ListingStore is the persistence surface for listings.
type ListingStore interface {
	Create(ctx context.Context, l *models.Listing) error
	List(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	Update(ctx context.Context, l *models.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingStore is the persistence surface for bookings.
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	List(ctx context.Context, scope policy.Scope) ([]models.Booking, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewStore is the persistence surface for reviews.
type ReviewStore interface {
	Create(ctx context.Context, rev *models.Review) error
	List(ctx context.Context, scope policy.Scope) ([]models.Review, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	Update(ctx context.Context, rev *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
