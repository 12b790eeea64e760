package policy

import (
	"testing"

	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/models"
)

func authedCaller() Caller {
	return Caller{ID: uuid.New(), Authenticated: true}
}

func staffCaller() Caller {
	return Caller{ID: uuid.New(), IsStaff: true, Authenticated: true}
}

// Test: staff see every booking
func TestBookingScope_Staff(t *testing.T) {
	scope := BookingScope(staffCaller())

	if !scope.All {
		t.Errorf("Expected staff booking scope to be All, got %+v", scope)
	}
	if !scope.Matches(uuid.New()) {
		t.Error("Expected staff scope to match any guest")
	}
}

// Test: non-staff see only their own bookings
func TestBookingScope_Guest(t *testing.T) {
	caller := authedCaller()
	scope := BookingScope(caller)

	if scope.All || scope.None {
		t.Fatalf("Expected guest-restricted scope, got %+v", scope)
	}
	if !scope.Matches(caller.ID) {
		t.Error("Expected scope to match the caller's own bookings")
	}
	if scope.Matches(uuid.New()) {
		t.Error("Expected scope to exclude other guests' bookings")
	}
}

// Test: anonymous callers have no visible bookings
func TestBookingScope_Anonymous(t *testing.T) {
	scope := BookingScope(Anonymous)

	if !scope.None {
		t.Errorf("Expected empty scope for anonymous caller, got %+v", scope)
	}
	if scope.Matches(uuid.New()) {
		t.Error("Expected empty scope to match nothing")
	}
}

// Test: review visibility per role
func TestReviewScope(t *testing.T) {
	if scope := ReviewScope(Anonymous); !scope.All {
		t.Errorf("Expected anonymous review scope to be All, got %+v", scope)
	}
	if scope := ReviewScope(staffCaller()); !scope.All {
		t.Errorf("Expected staff review scope to be All, got %+v", scope)
	}

	caller := authedCaller()
	scope := ReviewScope(caller)
	if scope.All {
		t.Fatalf("Expected own-reviews scope for authenticated user, got %+v", scope)
	}
	if !scope.Matches(caller.ID) || scope.Matches(uuid.New()) {
		t.Error("Expected scope restricted to the caller's own reviews")
	}
}

func TestCanModifyListing(t *testing.T) {
	host := authedCaller()
	other := authedCaller()

	if !CanModifyListing(host, host.ID) {
		t.Error("Expected host to be allowed to modify own listing")
	}
	if CanModifyListing(other, host.ID) {
		t.Error("Expected non-host to be denied")
	}
	if !CanModifyListing(staffCaller(), host.ID) {
		t.Error("Expected staff to be allowed")
	}
	if CanModifyListing(Anonymous, host.ID) {
		t.Error("Expected anonymous to be denied")
	}
}

func TestCanModifyBooking(t *testing.T) {
	guest := authedCaller()
	booking := &models.Booking{GuestID: guest.ID, Status: models.BookingStatusPending}

	if !CanModifyBooking(guest, booking) {
		t.Error("Expected guest to be allowed to modify a pending booking")
	}
	if CanModifyBooking(authedCaller(), booking) {
		t.Error("Expected another user to be denied")
	}

	booking.Status = models.BookingStatusCompleted
	if CanModifyBooking(guest, booking) {
		t.Error("Expected guest to be denied once the booking is completed")
	}
	if !CanModifyBooking(staffCaller(), booking) {
		t.Error("Expected staff to be allowed regardless of status")
	}
}

func TestCanModifyReview(t *testing.T) {
	guest := authedCaller()

	if !CanModifyReview(guest, guest.ID) {
		t.Error("Expected review owner to be allowed")
	}
	if CanModifyReview(authedCaller(), guest.ID) {
		t.Error("Expected another user to be denied")
	}
	if !CanModifyReview(staffCaller(), guest.ID) {
		t.Error("Expected staff to be allowed")
	}
	if CanModifyReview(Anonymous, guest.ID) {
		t.Error("Expected anonymous to be denied")
	}
}
