package handlers

import (
	"errors"
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

// ReviewsHandler manages review-related endpoints
type ReviewsHandler struct {
	reviews  ReviewStore
	bookings BookingStore
	listings ListingStore
	users    UserStore
	render   renderer
}

// NewReviewsHandler creates a new ReviewsHandler
func NewReviewsHandler(reviews ReviewStore, bookings BookingStore, listings ListingStore, users UserStore) *ReviewsHandler {
	return &ReviewsHandler{
		reviews:  reviews,
		bookings: bookings,
		listings: listings,
		users:    users,
		render:   renderer{users: users, listings: listings, bookings: bookings},
	}
}

// ListReviews handles GET /api/reviews
// @Summary List visible reviews
// @Description Anonymous callers and staff see all reviews; authenticated users see their own.
// @Tags reviews
// @Produce json
// @Success 200 {object} dto.ReviewListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews [get]
func (h *ReviewsHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())

	reviews, err := h.reviews.List(r.Context(), policy.ReviewScope(caller))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp, err := h.render.review(r.Context(), &reviews[i])
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		items = append(items, resp)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ReviewListResponse{Reviews: items, Count: len(items)})
}

// CreateReview handles POST /api/reviews
// @Summary Create a review
// @Description Review a booking. The guest is always the caller; the booking must belong to the supplied listing.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews [post]
func (h *ReviewsHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	bookingID, err := uuid.Parse(strings.TrimSpace(req.BookingID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "booking_id must be UUID")
		return
	}
	listingID, err := uuid.Parse(strings.TrimSpace(req.ListingID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "listing_id must be UUID")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "rating must be between 1 and 5")
		return
	}

	booking, err := h.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid reference", "booking_id does not reference an existing booking")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if _, err := h.listings.GetByID(r.Context(), listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid reference", "listing_id does not reference an existing listing")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	// The booking and listing references must agree.
	if booking.ListingID != listingID {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid reference", "booking does not belong to the given listing")
		return
	}

	now := time.Now()
	review := &models.Review{
		ID:        uuid.New(),
		BookingID: bookingID,
		ListingID: listingID,
		GuestID:   userID, // guest is always the caller
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.reviews.Create(r.Context(), review); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp, err := h.render.review(r.Context(), review)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

// getVisibleReview loads a review and hides records outside the
// caller's visible set behind a 404.
func (h *ReviewsHandler) getVisibleReview(w http.ResponseWriter, r *http.Request, caller policy.Caller) (*models.Review, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid review id", "id must be UUID")
		return nil, false
	}

	review, err := h.reviews.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Review not found")
			return nil, false
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return nil, false
	}

	if !policy.ReviewScope(caller).Matches(review.GuestID) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Review not found")
		return nil, false
	}
	return review, true
}

// ReviewDetail handles GET /api/reviews/{id}
// @Summary Get review detail
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [get]
func (h *ReviewsHandler) ReviewDetail(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())

	review, ok := h.getVisibleReview(w, r, caller)
	if !ok {
		return
	}

	resp, err := h.render.review(r.Context(), review)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// UpdateReview handles PUT/PATCH /api/reviews/{id}
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param payload body dto.UpdateReviewRequest true "Update payload"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [put]
func (h *ReviewsHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	cur, ok := h.getVisibleReview(w, r, caller)
	if !ok {
		return
	}

	if !policy.CanModifyReview(caller, cur.GuestID) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the author can update this review")
		return
	}

	var req dto.UpdateReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "rating must be between 1 and 5")
			return
		}
		cur.Rating = *req.Rating
	}
	if req.Comment != nil {
		cur.Comment = *req.Comment
	}

	cur.UpdatedAt = time.Now()
	if err := h.reviews.Update(r.Context(), cur); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp, err := h.render.review(r.Context(), cur)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// DeleteReview handles DELETE /api/reviews/{id}
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [delete]
func (h *ReviewsHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	cur, ok := h.getVisibleReview(w, r, caller)
	if !ok {
		return
	}

	if !policy.CanModifyReview(caller, cur.GuestID) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the author can delete this review")
		return
	}

	if err := h.reviews.Delete(r.Context(), cur.ID); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Review deleted successfully"})
}
