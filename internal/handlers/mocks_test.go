package handlers

import (
	"context"

	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/policy"
	"STAYNEST_BACK-END/internal/repository"
)

// In-memory store fakes used by the handler tests.

type mockUserStore struct {
	users map[uuid.UUID]*models.User
	// lookupErr, when set, is returned by every lookup to simulate a
	// failing database.
	lookupErr error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserStore) Create(_ context.Context, u *models.User) error {
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type mockListingStore struct {
	listings map[uuid.UUID]*models.Listing
}

func newMockListingStore() *mockListingStore {
	return &mockListingStore{listings: make(map[uuid.UUID]*models.Listing)}
}

func (m *mockListingStore) Create(_ context.Context, l *models.Listing) error {
	cp := *l
	m.listings[l.ID] = &cp
	return nil
}

func (m *mockListingStore) List(_ context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (m *mockListingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Listing, error) {
	l, ok := m.listings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *mockListingStore) Update(_ context.Context, l *models.Listing) error {
	if _, ok := m.listings[l.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *l
	m.listings[l.ID] = &cp
	return nil
}

func (m *mockListingStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.listings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.listings, id)
	return nil
}

type mockBookingStore struct {
	bookings map[uuid.UUID]*models.Booking
}

func newMockBookingStore() *mockBookingStore {
	return &mockBookingStore{bookings: make(map[uuid.UUID]*models.Booking)}
}

func (m *mockBookingStore) Create(_ context.Context, b *models.Booking) error {
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *mockBookingStore) List(_ context.Context, scope policy.Scope) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if scope.Matches(b.GuestID) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingStore) ListByListing(_ context.Context, listingID uuid.UUID) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if b.ListingID == listingID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockBookingStore) Update(_ context.Context, b *models.Booking) error {
	if _, ok := m.bookings[b.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *mockBookingStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

type mockReviewStore struct {
	reviews map[uuid.UUID]*models.Review
}

func newMockReviewStore() *mockReviewStore {
	return &mockReviewStore{reviews: make(map[uuid.UUID]*models.Review)}
}

func (m *mockReviewStore) Create(_ context.Context, rev *models.Review) error {
	cp := *rev
	m.reviews[rev.ID] = &cp
	return nil
}

func (m *mockReviewStore) List(_ context.Context, scope policy.Scope) ([]models.Review, error) {
	out := make([]models.Review, 0)
	for _, rev := range m.reviews {
		if scope.Matches(rev.GuestID) {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (m *mockReviewStore) ListByListing(_ context.Context, listingID uuid.UUID) ([]models.Review, error) {
	out := make([]models.Review, 0)
	for _, rev := range m.reviews {
		if rev.ListingID == listingID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (m *mockReviewStore) GetByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	rev, ok := m.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rev
	return &cp, nil
}

func (m *mockReviewStore) Update(_ context.Context, rev *models.Review) error {
	if _, ok := m.reviews[rev.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *rev
	m.reviews[rev.ID] = &cp
	return nil
}

func (m *mockReviewStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}
