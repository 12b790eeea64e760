package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/utils"
)

// testEnv wires the handlers against in-memory stores and a router
// mirroring the production route table. Authentication middleware is
// not mounted; tests inject the caller identity on the request
// context the way the middleware would.
type testEnv struct {
	users    *mockUserStore
	listings *mockListingStore
	bookings *mockBookingStore
	reviews  *mockReviewStore
	router   *chi.Mux
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:    newMockUserStore(),
		listings: newMockListingStore(),
		bookings: newMockBookingStore(),
		reviews:  newMockReviewStore(),
	}

	jwtCfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
	authHandler := NewAuthHandler(env.users, jwtCfg)
	listingsHandler := NewListingsHandler(env.listings, env.bookings, env.reviews, env.users)
	bookingsHandler := NewBookingsHandler(env.bookings, env.listings, env.users, nil)
	reviewsHandler := NewReviewsHandler(env.reviews, env.bookings, env.listings, env.users)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Get("/profile", authHandler.Profile)
		})
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", listingsHandler.ListListings)
			r.Post("/", listingsHandler.CreateListing)
			r.Get("/{id}", listingsHandler.ListingDetail)
			r.Put("/{id}", listingsHandler.UpdateListing)
			r.Patch("/{id}", listingsHandler.UpdateListing)
			r.Delete("/{id}", listingsHandler.DeleteListing)
			r.Get("/{id}/bookings", listingsHandler.ListingBookings)
			r.Get("/{id}/reviews", listingsHandler.ListingReviews)
		})
		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", bookingsHandler.ListBookings)
			r.Post("/", bookingsHandler.CreateBooking)
			r.Get("/{id}", bookingsHandler.BookingDetail)
			r.Put("/{id}", bookingsHandler.UpdateBooking)
			r.Patch("/{id}", bookingsHandler.UpdateBooking)
			r.Delete("/{id}", bookingsHandler.DeleteBooking)
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewsHandler.ListReviews)
			r.Post("/", reviewsHandler.CreateReview)
			r.Get("/{id}", reviewsHandler.ReviewDetail)
			r.Put("/{id}", reviewsHandler.UpdateReview)
			r.Patch("/{id}", reviewsHandler.UpdateReview)
			r.Delete("/{id}", reviewsHandler.DeleteReview)
		})
	})
	env.router = r
	return env
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) *http.Request {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches the caller identity the auth middleware would set.
func asUser(req *http.Request, u *models.User) *http.Request {
	return req.WithContext(utils.WithCaller(req.Context(), u.ID, u.Email, u.IsStaff))
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func (env *testEnv) seedUser(t *testing.T, username string, isStaff bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	now := time.Now()
	u := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: string(hash),
		IsStaff:      isStaff,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := env.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (env *testEnv) seedListing(t *testing.T, host *models.User, pricePerNight float64, maxGuests int) *models.Listing {
	t.Helper()
	now := time.Now()
	l := &models.Listing{
		ID:            uuid.New(),
		Title:         "Cozy Apartment in Downtown",
		Description:   "Close to everything",
		Address:       "123 Main St",
		City:          "Lisbon",
		Country:       "Portugal",
		PricePerNight: pricePerNight,
		MaxGuests:     maxGuests,
		Bedrooms:      2,
		Bathrooms:     1,
		PropertyType:  "apartment",
		Amenities:     "WiFi, Kitchen",
		IsAvailable:   true,
		HostID:        host.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := env.listings.Create(context.Background(), l); err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return l
}

func (env *testEnv) seedBooking(t *testing.T, listing *models.Listing, guest *models.User, status string) *models.Booking {
	t.Helper()
	now := time.Now()
	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	b := &models.Booking{
		ID:          uuid.New(),
		ListingID:   listing.ID,
		GuestID:     guest.ID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalPrice:  listing.PricePerNight * 3,
		GuestsCount: 2,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := env.bookings.Create(context.Background(), b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func (env *testEnv) seedReview(t *testing.T, booking *models.Booking, rating int) *models.Review {
	t.Helper()
	now := time.Now()
	rev := &models.Review{
		ID:        uuid.New(),
		BookingID: booking.ID,
		ListingID: booking.ListingID,
		GuestID:   booking.GuestID,
		Rating:    rating,
		Comment:   "Great stay",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := env.reviews.Create(context.Background(), rev); err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return rev
}
