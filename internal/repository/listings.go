package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"STAYNEST_BACK-END/internal/models"
)

const listingColumns = `id, title, description, address, city, country, price_per_night, max_guests,
	bedrooms, bathrooms, property_type, amenities, is_available, host_id, created_at, updated_at`

// ListingRepository handles persistence for listings.
type ListingRepository struct {
	db *pgxpool.Pool
}

// NewListingRepository constructs a ListingRepository.
func NewListingRepository(db *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create inserts a new listing.
func (r *ListingRepository) Create(ctx context.Context, l *models.Listing) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO listings (`+listingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		l.ID, l.Title, l.Description, l.Address, l.City, l.Country, l.PricePerNight, l.MaxGuests,
		l.Bedrooms, l.Bathrooms, l.PropertyType, l.Amenities, l.IsAvailable, l.HostID, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Address, &l.City, &l.Country, &l.PricePerNight,
		&l.MaxGuests, &l.Bedrooms, &l.Bathrooms, &l.PropertyType, &l.Amenities, &l.IsAvailable,
		&l.HostID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]models.Listing, error) {
	defer rows.Close()
	listings := make([]models.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

// List returns all listings ordered by creation time descending.
func (r *ListingRepository) List(ctx context.Context) ([]models.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM listings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return collectListings(rows)
}

// GetByID returns a single listing or ErrNotFound.
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return scanListing(r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
}

// Update rewrites all mutable fields of a listing.
func (r *ListingRepository) Update(ctx context.Context, l *models.Listing) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE listings
		    SET title = $1, description = $2, address = $3, city = $4, country = $5,
		        price_per_night = $6, max_guests = $7, bedrooms = $8, bathrooms = $9,
		        property_type = $10, amenities = $11, is_available = $12, updated_at = $13
		  WHERE id = $14`,
		l.Title, l.Description, l.Address, l.City, l.Country, l.PricePerNight, l.MaxGuests,
		l.Bedrooms, l.Bathrooms, l.PropertyType, l.Amenities, l.IsAvailable, l.UpdatedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a listing. Bookings and reviews cascade in the
// database.
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
