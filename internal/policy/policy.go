// Package policy decides which records a caller may see and which
// actions they may perform. It is a set of pure functions over the
// caller's identity so the rules can be tested without a database.
package policy

import (
	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/models"
)

// Caller describes the identity making a request. The zero value is an
// anonymous caller.
type Caller struct {
	ID            uuid.UUID
	IsStaff       bool
	Authenticated bool
}

// Anonymous is the caller used for requests without credentials.
var Anonymous = Caller{}

// Scope is the visible subset of a collection for a caller.
// Exactly one of All, GuestID or None applies.
type Scope struct {
	All     bool
	GuestID *uuid.UUID // only records whose guest matches
	None    bool       // empty result set
}

// BookingScope returns the visible set of bookings for the caller:
// staff see everything, authenticated users see their own bookings,
// anonymous callers see nothing.
func BookingScope(c Caller) Scope {
	if !c.Authenticated {
		return Scope{None: true}
	}
	if c.IsStaff {
		return Scope{All: true}
	}
	id := c.ID
	return Scope{GuestID: &id}
}

// ReviewScope returns the visible set of reviews for list operations:
// staff and anonymous callers see everything, authenticated non-staff
// users see only their own reviews.
func ReviewScope(c Caller) Scope {
	if !c.Authenticated || c.IsStaff {
		return Scope{All: true}
	}
	id := c.ID
	return Scope{GuestID: &id}
}

// Matches reports whether a record owned by guestID falls inside the
// scope.
func (s Scope) Matches(guestID uuid.UUID) bool {
	if s.None {
		return false
	}
	if s.All {
		return true
	}
	return s.GuestID != nil && *s.GuestID == guestID
}

// CanModifyListing reports whether the caller may update or delete a
// listing owned by hostID. Only the host or staff may.
func CanModifyListing(c Caller, hostID uuid.UUID) bool {
	if !c.Authenticated {
		return false
	}
	return c.IsStaff || c.ID == hostID
}

// CanModifyBooking reports whether the caller may update or delete a
// booking. Staff always may; the guest may until the booking is
// completed.
func CanModifyBooking(c Caller, b *models.Booking) bool {
	if !c.Authenticated {
		return false
	}
	if c.IsStaff {
		return true
	}
	return c.ID == b.GuestID && b.Status != models.BookingStatusCompleted
}

// CanModifyReview reports whether the caller may update or delete a
// review owned by guestID.
func CanModifyReview(c Caller, guestID uuid.UUID) bool {
	if !c.Authenticated {
		return false
	}
	return c.IsStaff || c.ID == guestID
}
