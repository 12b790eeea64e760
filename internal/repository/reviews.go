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

const reviewColumns = `id, booking_id, listing_id, guest_id, rating, comment, created_at, updated_at`

// ReviewRepository handles persistence for reviews.
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review.
func (r *ReviewRepository) Create(ctx context.Context, rev *models.Review) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reviews (`+reviewColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rev.ID, rev.BookingID, rev.ListingID, rev.GuestID, rev.Rating, rev.Comment, rev.CreatedAt, rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func scanReview(row pgx.Row) (*models.Review, error) {
	var rev models.Review
	err := row.Scan(&rev.ID, &rev.BookingID, &rev.ListingID, &rev.GuestID, &rev.Rating,
		&rev.Comment, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}
	return &rev, nil
}

func collectReviews(rows pgx.Rows) ([]models.Review, error) {
	defer rows.Close()
	reviews := make([]models.Review, 0)
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rev)
	}
	return reviews, rows.Err()
}

// List returns the reviews inside the caller's visible scope, newest
// first.
func (r *ReviewRepository) List(ctx context.Context, scope policy.Scope) ([]models.Review, error) {
	if scope.None {
		return []models.Review{}, nil
	}
	var (
		rows pgx.Rows
		err  error
	)
	if scope.All {
		rows, err = r.db.Query(ctx,
			`SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+reviewColumns+` FROM reviews WHERE guest_id = $1 ORDER BY created_at DESC`,
			*scope.GuestID)
	}
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return collectReviews(rows)
}

// ListByListing returns all reviews for a listing.
func (r *ReviewRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC`,
		listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by listing: %w", err)
	}
	return collectReviews(rows)
}

// GetByID returns a single review or ErrNotFound.
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return scanReview(r.db.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
}

// Update rewrites the mutable fields of a review.
func (r *ReviewRepository) Update(ctx context.Context, rev *models.Review) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reviews SET rating = $1, comment = $2, updated_at = $3 WHERE id = $4`,
		rev.Rating, rev.Comment, rev.UpdatedAt, rev.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a review.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
