package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/dto"
	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/policy"
	"STAYNEST_BACK-END/internal/repository"
	"STAYNEST_BACK-END/internal/utils"
)

// BookingMailer sends the best-effort booking confirmation email.
type BookingMailer interface {
	SendBookingConfirmation(to, listingTitle, checkIn, checkOut string, totalPrice float64) error
}

// BookingsHandler manages booking-related endpoints
type BookingsHandler struct {
	bookings BookingStore
	listings ListingStore
	users    UserStore
	mailer   BookingMailer // may be nil when email is not configured
	render   renderer
}

// NewBookingsHandler creates a new BookingsHandler
func NewBookingsHandler(bookings BookingStore, listings ListingStore, users UserStore, mailer BookingMailer) *BookingsHandler {
	return &BookingsHandler{
		bookings: bookings,
		listings: listings,
		users:    users,
		mailer:   mailer,
		render:   renderer{users: users, listings: listings, bookings: bookings},
	}
}

// ListBookings handles GET /api/bookings
// @Summary List the caller's visible bookings
// @Description Staff see all bookings; other users see only their own.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings [get]
func (h *BookingsHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	bookings, err := h.bookings.List(r.Context(), policy.BookingScope(caller))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := h.render.booking(r.Context(), &bookings[i])
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		items = append(items, resp)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingListResponse{Bookings: items, Count: len(items)})
}

// CreateBooking handles POST /api/bookings
// @Summary Create a booking
// @Description Book a listing for a date range. The guest is always the caller and total_price is price_per_night times nights, computed server-side.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings [post]
func (h *BookingsHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	listingID, err := uuid.Parse(strings.TrimSpace(req.ListingID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "listing_id must be UUID")
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "check_in must be ISO 8601 format (YYYY-MM-DD)")
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "check_out must be ISO 8601 format (YYYY-MM-DD)")
		return
	}
	if !checkOut.After(checkIn) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "check_out must be after check_in")
		return
	}

	// Resolve the listing reference; an unresolvable reference is a
	// validation error, not a 404.
	listing, err := h.listings.GetByID(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid reference", "listing_id does not reference an existing listing")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if req.GuestsCount < 1 || req.GuestsCount > listing.MaxGuests {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "guests_count must be between 1 and the listing's max_guests")
		return
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	now := time.Now()
	booking := &models.Booking{
		ID:              uuid.New(),
		ListingID:       listing.ID,
		GuestID:         userID, // guest is always the caller
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		TotalPrice:      listing.PricePerNight * float64(nights),
		GuestsCount:     req.GuestsCount,
		Status:          models.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := h.bookings.Create(r.Context(), booking); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if h.mailer != nil {
		if guest, err := h.users.GetByID(r.Context(), userID); err == nil {
			if err := h.mailer.SendBookingConfirmation(guest.Email, listing.Title,
				utils.FormatDate(checkIn), utils.FormatDate(checkOut), booking.TotalPrice); err != nil {
				log.Printf("booking confirmation email to %s failed: %v", guest.Email, err)
			}
		}
	}

	resp, err := h.render.booking(r.Context(), booking)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

// getVisibleBooking loads a booking and hides records outside the
// caller's visible set behind a 404 so existence never leaks.
func (h *BookingsHandler) getVisibleBooking(w http.ResponseWriter, r *http.Request, caller policy.Caller) (*models.Booking, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid booking id", "id must be UUID")
		return nil, false
	}

	booking, err := h.bookings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Booking not found")
			return nil, false
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return nil, false
	}

	if !policy.BookingScope(caller).Matches(booking.GuestID) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Booking not found")
		return nil, false
	}
	return booking, true
}

// BookingDetail handles GET /api/bookings/{id}
// @Summary Get booking detail
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/{id} [get]
func (h *BookingsHandler) BookingDetail(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	booking, ok := h.getVisibleBooking(w, r, caller)
	if !ok {
		return
	}

	resp, err := h.render.booking(r.Context(), booking)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// UpdateBooking handles PUT/PATCH /api/bookings/{id}
// @Summary Update a booking
// @Description Guests may change their booking until it is completed; staff may always. Changing the dates recomputes total_price.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param payload body dto.UpdateBookingRequest true "Update payload"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/{id} [put]
func (h *BookingsHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	cur, ok := h.getVisibleBooking(w, r, caller)
	if !ok {
		return
	}

	if !policy.CanModifyBooking(caller, cur) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Completed bookings can no longer be changed")
		return
	}

	var req dto.UpdateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	if req.CheckIn != nil {
		t, err := utils.ParseDate(*req.CheckIn)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "check_in must be ISO 8601 format (YYYY-MM-DD)")
			return
		}
		cur.CheckIn = t
	}
	if req.CheckOut != nil {
		t, err := utils.ParseDate(*req.CheckOut)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "check_out must be ISO 8601 format (YYYY-MM-DD)")
			return
		}
		cur.CheckOut = t
	}
	if !cur.CheckOut.After(cur.CheckIn) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "check_out must be after check_in")
		return
	}
	if req.Status != nil {
		st := strings.ToLower(strings.TrimSpace(*req.Status))
		if !models.IsValidBookingStatus(st) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "status must be pending, confirmed, completed, or cancelled")
			return
		}
		cur.Status = st
	}
	if req.SpecialRequests != nil {
		cur.SpecialRequests = *req.SpecialRequests
	}

	listing, err := h.listings.GetByID(r.Context(), cur.ListingID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if req.GuestsCount != nil {
		if *req.GuestsCount < 1 || *req.GuestsCount > listing.MaxGuests {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "guests_count must be between 1 and the listing's max_guests")
			return
		}
		cur.GuestsCount = *req.GuestsCount
	}

	// Dates changed: recompute the derived price from the current rate.
	if req.CheckIn != nil || req.CheckOut != nil {
		cur.TotalPrice = listing.PricePerNight * float64(cur.Nights())
	}

	cur.UpdatedAt = time.Now()
	if err := h.bookings.Update(r.Context(), cur); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp, err := h.render.booking(r.Context(), cur)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// DeleteBooking handles DELETE /api/bookings/{id}
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/{id} [delete]
func (h *BookingsHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	cur, ok := h.getVisibleBooking(w, r, caller)
	if !ok {
		return
	}

	if !policy.CanModifyBooking(caller, cur) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Completed bookings can no longer be changed")
		return
	}

	if err := h.bookings.Delete(r.Context(), cur.ID); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Booking deleted successfully"})
}
