package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/dto"
)

func TestListReviewsVisibility(t *testing.T) {
	env := newTestEnv()
	host := env.seedUser(t, "host", false)
	alice := env.seedUser(t, "alice", false)
	bob := env.seedUser(t, "bob", false)
	staff := env.seedUser(t, "admin", true)
	listing := env.seedListing(t, host, 100, 4)
	env.seedReview(t, env.seedBooking(t, listing, alice, "completed"), 5)
	env.seedReview(t, env.seedBooking(t, listing, bob, "completed"), 4)

	// Anonymous callers see every review.
	rec := env.do(jsonRequest(t, http.MethodGet, "/api/reviews", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.ReviewListResponse
	decodeBody(t, rec, &resp)
	if resp.Count != 2 {
		t.Fatalf("expected anonymous caller to see 2 reviews, got %d", resp.Count)
	}

	// An authenticated non-staff user sees only their own.
	rec = env.do(asUser(jsonRequest(t, http.MethodGet, "/api/reviews", nil), alice))
	decodeBody(t, rec, &resp)
	if resp.Count != 1 {
		t.Fatalf("expected alice to see 1 review, got %d", resp.Count)
	}
	if resp.Reviews[0].Guest.ID != alice.ID.String() {
		t.Errorf("expected alice's review, got guest %s", resp.Reviews[0].Guest.ID)
	}

	// Staff see everything.
	rec = env.do(asUser(jsonRequest(t, http.MethodGet, "/api/reviews", nil), staff))
	decodeBody(t, rec, &resp)
	if resp.Count != 2 {
		t.Fatalf("expected staff to see 2 reviews, got %d", resp.Count)
	}
}

func TestListReviewsEmpty(t *testing.T) {
	env := newTestEnv()

	rec := env.do(jsonRequest(t, http.MethodGet, "/api/reviews", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dto.ReviewListResponse
	decodeBody(t, rec, &resp)
	if resp.Count != 0 || resp.Reviews == nil {
		t.Fatalf("expected empty review list, got %+v", resp)
	}
}

func TestCreateReviewGuestIsCaller(t *testing.T) {
	env := newTestEnv()
	host := env.seedUser(t, "host", false)
	alice := env.seedUser(t, "alice", false)
	listing := env.seedListing(t, host, 100, 4)
	booking := env.seedBooking(t, listing, alice, "completed")

	payload := map[string]interface{}{
		"booking_id": booking.ID.String(),
		"listing_id": listing.ID.String(),
		"rating":     5,
		"comment":    "Wonderful place",
		"guest":      host.ID.String(), // ignored
	}
	rec := env.do(asUser(jsonRequest(t, http.MethodPost, "/api/reviews", payload), alice))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ReviewResponse
	decodeBody(t, rec, &resp)
	if resp.Guest.ID != alice.ID.String() {
		t.Errorf("expected guest %s, got %s", alice.ID, resp.Guest.ID)
	}
	if resp.Booking.ID != booking.ID.String() {
		t.Errorf("expected nested booking %s, got %s", booking.ID, resp.Booking.ID)
	}
	if resp.Listing.ID != listing.ID.String() {
		t.Errorf("expected nested listing %s, got %s", listing.ID, resp.Listing.ID)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv()
	host := env.seedUser(t, "host", false)
	alice := env.seedUser(t, "alice", false)
	listing := env.seedListing(t, host, 100, 4)
	otherListing := env.seedListing(t, host, 200, 2)
	booking := env.seedBooking(t, listing, alice, "completed")

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"unknown booking", func(m map[string]interface{}) { m["booking_id"] = uuid.New().String() }},
		{"unknown listing", func(m map[string]interface{}) { m["listing_id"] = uuid.New().String() }},
		{"booking listing mismatch", func(m map[string]interface{}) { m["listing_id"] = otherListing.ID.String() }},
		{"rating too low", func(m map[string]interface{}) { m["rating"] = 0 }},
		{"rating too high", func(m map[string]interface{}) { m["rating"] = 6 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := map[string]interface{}{
				"booking_id": booking.ID.String(),
				"listing_id": listing.ID.String(),
				"rating":     4,
				"comment":    "Nice",
			}
			tc.mutate(payload)
			rec := env.do(asUser(jsonRequest(t, http.MethodPost, "/api/reviews", payload), alice))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateReviewUnauthenticated(t *testing.T) {
	env := newTestEnv()
	host := env.seedUser(t, "host", false)
	alice := env.seedUser(t, "alice", false)
	listing := env.seedListing(t, host, 100, 4)
	booking := env.seedBooking(t, listing, alice, "completed")

	payload := map[string]interface{}{
		"booking_id": booking.ID.String(),
		"listing_id": listing.ID.String(),
		"rating":     5,
	}
	rec := env.do(jsonRequest(t, http.MethodPost, "/api/reviews", payload))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestReviewDetailVisibility(t *testing.T) {
	env := newTestEnv()
	host := env.seedUser(t, "host", false)
	alice := env.seedUser(t, "alice", false)
	bob := env.seedUser(t, "bob", false)
	listing := env.seedListing(t, host, 100, 4)
	review := env.seedReview(t, env.seedBooking(t, listing, alice, "completed"), 5)

	// Anonymous callers can read any review.
	rec := env.do(jsonRequest(t, http.MethodGet, "/api/reviews/"+review.ID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 anonymous, got %d: %s", rec.Code, rec.Body.String())
	}

	// An authenticated user's visible set is their own reviews only.
	rec = env.do(asUser(jsonRequest(t, http.MethodGet, "/api/reviews/"+review.ID.String(), nil), bob))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign review, got %d", rec.Code)
	}

	rec = env.do(asUser(jsonRequest(t, http.MethodGet, "/api/reviews/"+review.ID.String(), nil), alice))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for author, got %d", rec.Code)
	}
}

func TestUpdateAndDeleteReview(t *testing.T) {
	env := newTestEnv()
	host := env.seedUser(t, "host", false)
	alice := env.seedUser(t, "alice", false)
	staff := env.seedUser(t, "admin", true)
	listing := env.seedListing(t, host, 100, 4)
	review := env.seedReview(t, env.seedBooking(t, listing, alice, "completed"), 5)

	rec := env.do(asUser(jsonRequest(t, http.MethodPatch, "/api/reviews/"+review.ID.String(),
		map[string]interface{}{"rating": 7}), alice))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %d", rec.Code)
	}

	rec = env.do(asUser(jsonRequest(t, http.MethodPatch, "/api/reviews/"+review.ID.String(),
		map[string]interface{}{"rating": 3, "comment": "Average after all"}), alice))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.ReviewResponse
	decodeBody(t, rec, &resp)
	if resp.Rating != 3 || resp.Comment != "Average after all" {
		t.Errorf("unexpected updated review: %+v", resp)
	}

	// Staff can delete anyone's review.
	rec = env.do(asUser(jsonRequest(t, http.MethodDelete, "/api/reviews/"+review.ID.String(), nil), staff))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for staff delete, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(jsonRequest(t, http.MethodGet, "/api/reviews/"+review.ID.String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
