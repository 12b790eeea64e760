package handlers

import (
	"context"

	"STAYNEST_BACK-END/internal/dto"
	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/utils"
)

// renderer assembles response DTOs, resolving the nested read-only
// representations (listing host, booking guest) from the stores.
type renderer struct {
	users    UserStore
	listings ListingStore
	bookings BookingStore
}

func userResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (rd renderer) listing(ctx context.Context, l *models.Listing) (dto.ListingResponse, error) {
	host, err := rd.users.GetByID(ctx, l.HostID)
	if err != nil {
		return dto.ListingResponse{}, err
	}
	return dto.ListingResponse{
		ID:            l.ID.String(),
		Title:         l.Title,
		Description:   l.Description,
		Address:       l.Address,
		City:          l.City,
		Country:       l.Country,
		PricePerNight: l.PricePerNight,
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		PropertyType:  l.PropertyType,
		Amenities:     l.Amenities,
		IsAvailable:   l.IsAvailable,
		Host:          userResponse(host),
		CreatedAt:     utils.FormatTimestamp(l.CreatedAt),
		UpdatedAt:     utils.FormatTimestamp(l.UpdatedAt),
	}, nil
}

func (rd renderer) booking(ctx context.Context, b *models.Booking) (dto.BookingResponse, error) {
	listing, err := rd.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	listingResp, err := rd.listing(ctx, listing)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	guest, err := rd.users.GetByID(ctx, b.GuestID)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	return dto.BookingResponse{
		ID:              b.ID.String(),
		Listing:         listingResp,
		Guest:           userResponse(guest),
		CheckIn:         utils.FormatDate(b.CheckIn),
		CheckOut:        utils.FormatDate(b.CheckOut),
		TotalPrice:      b.TotalPrice,
		GuestsCount:     b.GuestsCount,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       utils.FormatTimestamp(b.CreatedAt),
		UpdatedAt:       utils.FormatTimestamp(b.UpdatedAt),
	}, nil
}

func (rd renderer) review(ctx context.Context, rev *models.Review) (dto.ReviewResponse, error) {
	booking, err := rd.bookings.GetByID(ctx, rev.BookingID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	bookingResp, err := rd.booking(ctx, booking)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	listing, err := rd.listings.GetByID(ctx, rev.ListingID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	listingResp, err := rd.listing(ctx, listing)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	guest, err := rd.users.GetByID(ctx, rev.GuestID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	return dto.ReviewResponse{
		ID:        rev.ID.String(),
		Booking:   bookingResp,
		Listing:   listingResp,
		Guest:     userResponse(guest),
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: utils.FormatTimestamp(rev.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(rev.UpdatedAt),
	}, nil
}
