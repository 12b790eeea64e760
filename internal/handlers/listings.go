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

// ListingsHandler manages listing-related endpoints
type ListingsHandler struct {
	listings ListingStore
	bookings BookingStore
	reviews  ReviewStore
	users    UserStore
	render   renderer
}

// NewListingsHandler creates a new ListingsHandler
func NewListingsHandler(listings ListingStore, bookings BookingStore, reviews ReviewStore, users UserStore) *ListingsHandler {
	return &ListingsHandler{
		listings: listings,
		bookings: bookings,
		reviews:  reviews,
		users:    users,
		render:   renderer{users: users, listings: listings, bookings: bookings},
	}
}

func listingIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid listing id", "id must be UUID")
		return uuid.Nil, false
	}
	return id, true
}

// ListListings handles GET /api/listings
// @Summary List all listings
// @Tags listings
// @Produce json
// @Success 200 {object} dto.ListingListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/listings [get]
func (h *ListingsHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.List(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		resp, err := h.render.listing(r.Context(), &listings[i])
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		items = append(items, resp)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ListingListResponse{Listings: items, Count: len(items)})
}

// CreateListing handles POST /api/listings
// @Summary Create a new listing
// @Description Create a listing owned by the authenticated user. The host cannot be chosen by the client.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateListingRequest true "Listing payload"
// @Success 201 {object} dto.ListingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/listings [post]
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateListingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Address = strings.TrimSpace(req.Address)
	req.City = strings.TrimSpace(req.City)
	req.Country = strings.TrimSpace(req.Country)
	req.PropertyType = strings.ToLower(strings.TrimSpace(req.PropertyType))

	if req.Title == "" || req.Address == "" || req.City == "" || req.Country == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title, address, city, country are required")
		return
	}
	if req.PricePerNight <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "price_per_night must be greater than 0")
		return
	}
	if req.MaxGuests <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "max_guests must be greater than 0")
		return
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "bedrooms and bathrooms cannot be negative")
		return
	}
	if !models.IsValidPropertyType(req.PropertyType) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "property_type must be apartment, villa, cabin, studio, or house")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	listing := &models.Listing{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		PropertyType:  req.PropertyType,
		Amenities:     req.Amenities,
		IsAvailable:   isAvailable,
		HostID:        userID, // host is always the caller
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.listings.Create(r.Context(), listing); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp, err := h.render.listing(r.Context(), listing)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

// ListingDetail handles GET /api/listings/{id}
// @Summary Get listing detail
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.ListingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/listings/{id} [get]
func (h *ListingsHandler) ListingDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := listingIDParam(w, r)
	if !ok {
		return
	}

	listing, err := h.listings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Listing not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp, err := h.render.listing(r.Context(), listing)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// UpdateListing handles PUT/PATCH /api/listings/{id}
// @Summary Update a listing
// @Description Only the host or staff may update a listing.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param payload body dto.UpdateListingRequest true "Update payload"
// @Success 200 {object} dto.ListingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/listings/{id} [put]
func (h *ListingsHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	id, ok := listingIDParam(w, r)
	if !ok {
		return
	}

	cur, err := h.listings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Listing not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if !policy.CanModifyListing(caller, cur.HostID) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the host can update this listing")
		return
	}

	var req dto.UpdateListingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Prepare new values, default to current if nil
	if req.Title != nil {
		cur.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		cur.Description = *req.Description
	}
	if req.Address != nil {
		cur.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		cur.City = strings.TrimSpace(*req.City)
	}
	if req.Country != nil {
		cur.Country = strings.TrimSpace(*req.Country)
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "price_per_night must be greater than 0")
			return
		}
		cur.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		if *req.MaxGuests <= 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "max_guests must be greater than 0")
			return
		}
		cur.MaxGuests = *req.MaxGuests
	}
	if req.Bedrooms != nil {
		cur.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		cur.Bathrooms = *req.Bathrooms
	}
	if req.PropertyType != nil {
		pt := strings.ToLower(strings.TrimSpace(*req.PropertyType))
		if !models.IsValidPropertyType(pt) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "property_type must be apartment, villa, cabin, studio, or house")
			return
		}
		cur.PropertyType = pt
	}
	if req.Amenities != nil {
		cur.Amenities = *req.Amenities
	}
	if req.IsAvailable != nil {
		cur.IsAvailable = *req.IsAvailable
	}
	if cur.Title == "" || cur.Address == "" || cur.City == "" || cur.Country == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title, address, city, country cannot be empty")
		return
	}

	cur.UpdatedAt = time.Now()
	if err := h.listings.Update(r.Context(), cur); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp, err := h.render.listing(r.Context(), cur)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// DeleteListing handles DELETE /api/listings/{id}
// @Summary Delete a listing
// @Description Only the host or staff may delete a listing. Bookings and reviews for the listing are removed with it.
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/listings/{id} [delete]
func (h *ListingsHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	caller := utils.GetCallerFromContext(r.Context())
	if !caller.Authenticated {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	id, ok := listingIDParam(w, r)
	if !ok {
		return
	}

	cur, err := h.listings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Listing not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if !policy.CanModifyListing(caller, cur.HostID) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the host can delete this listing")
		return
	}

	if err := h.listings.Delete(r.Context(), id); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Listing deleted successfully"})
}

// ListingBookings handles GET /api/listings/{id}/bookings
// @Summary List bookings for a listing
// @Description Returns every booking of the listing, regardless of guest.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.BookingListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/listings/{id}/bookings [get]
func (h *ListingsHandler) ListingBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := listingIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.listings.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Listing not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	bookings, err := h.bookings.ListByListing(r.Context(), id)
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

// ListingReviews handles GET /api/listings/{id}/reviews
// @Summary List reviews for a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.ReviewListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/listings/{id}/reviews [get]
func (h *ListingsHandler) ListingReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := listingIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.listings.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Listing not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	reviews, err := h.reviews.ListByListing(r.Context(), id)
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
