// Command seed populates the database with sample users, listings,
// bookings, and reviews for local development.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/database"
	"STAYNEST_BACK-END/internal/models"
	"STAYNEST_BACK-END/internal/repository"
)

type seedUser struct {
	username, email, firstName, lastName string
}

type seedListing struct {
	title, description, address, city, country string
	pricePerNight                              float64
	maxGuests, bedrooms, bathrooms             int
	propertyType, amenities                    string
	host                                       int // index into users
}

var users = []seedUser{
	{"john_doe", "john@example.com", "John", "Doe"},
	{"jane_smith", "jane@example.com", "Jane", "Smith"},
	{"mike_wilson", "mike@example.com", "Mike", "Wilson"},
	{"sarah_jones", "sarah@example.com", "Sarah", "Jones"},
}

var listings = []seedListing{
	{
		title:         "Cozy Apartment in Downtown",
		description:   "A beautiful cozy apartment located in the heart of downtown with amazing city views.",
		address:       "123 Main St",
		city:          "New York",
		country:       "USA",
		pricePerNight: 120.00,
		maxGuests:     4, bedrooms: 2, bathrooms: 1,
		propertyType: "apartment",
		amenities:    "WiFi, Kitchen, Air Conditioning, TV",
		host:         0,
	},
	{
		title:         "Luxury Villa with Pool",
		description:   "Stunning luxury villa with private pool and garden. Perfect for family vacations.",
		address:       "456 Beach Road",
		city:          "Miami",
		country:       "USA",
		pricePerNight: 350.00,
		maxGuests:     8, bedrooms: 4, bathrooms: 3,
		propertyType: "villa",
		amenities:    "Pool, WiFi, Kitchen, Air Conditioning, TV, Garden",
		host:         1,
	},
	{
		title:         "Mountain Cabin Retreat",
		description:   "Peaceful cabin in the mountains with breathtaking views and hiking trails nearby.",
		address:       "789 Mountain View",
		city:          "Aspen",
		country:       "USA",
		pricePerNight: 180.00,
		maxGuests:     6, bedrooms: 3, bathrooms: 2,
		propertyType: "cabin",
		amenities:    "Fireplace, WiFi, Kitchen, Hiking Trails",
		host:         0,
	},
	{
		title:         "Modern Studio in City Center",
		description:   "Modern and stylish studio apartment perfect for solo travelers or couples.",
		address:       "321 Central Ave",
		city:          "San Francisco",
		country:       "USA",
		pricePerNight: 95.00,
		maxGuests:     2, bedrooms: 1, bathrooms: 1,
		propertyType: "studio",
		amenities:    "WiFi, Kitchen, Workspace",
		host:         2,
	},
	{
		title:         "Charming House with Garden",
		description:   "Family friendly house with a large garden in a quiet neighborhood.",
		address:       "654 Oak Lane",
		city:          "Austin",
		country:       "USA",
		pricePerNight: 150.00,
		maxGuests:     6, bedrooms: 3, bathrooms: 2,
		propertyType: "house",
		amenities:    "WiFi, Kitchen, Garden, BBQ, Parking",
		host:         3,
	},
}

var comments = []string{
	"Great place, exactly as described. Would stay again!",
	"Lovely host and a very clean property.",
	"Fantastic location, everything within walking distance.",
	"Comfortable and quiet. Highly recommended.",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	log.Println("Seeding database...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now()
	seededUsers := make([]*models.User, 0, len(users))
	for _, su := range users {
		if existing, err := userRepo.GetByUsername(ctx, su.username); err == nil {
			seededUsers = append(seededUsers, existing)
			continue
		}
		u := &models.User{
			ID:           uuid.New(),
			Username:     su.username,
			Email:        su.email,
			FirstName:    su.firstName,
			LastName:     su.lastName,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", su.username, err)
		}
		seededUsers = append(seededUsers, u)
		log.Printf("Created user: %s", u.Username)
	}

	// Re-runs must not duplicate fixtures: a listing already present by
	// title is skipped together with its booking and review.
	existing, err := listingRepo.List(ctx)
	if err != nil {
		log.Fatalf("list listings: %v", err)
	}
	existingTitles := make(map[string]bool, len(existing))
	for _, l := range existing {
		existingTitles[l.Title] = true
	}

	for _, sl := range listings {
		if existingTitles[sl.title] {
			log.Printf("Listing exists, skipping: %s", sl.title)
			continue
		}
		l := &models.Listing{
			ID:            uuid.New(),
			Title:         sl.title,
			Description:   sl.description,
			Address:       sl.address,
			City:          sl.city,
			Country:       sl.country,
			PricePerNight: sl.pricePerNight,
			MaxGuests:     sl.maxGuests,
			Bedrooms:      sl.bedrooms,
			Bathrooms:     sl.bathrooms,
			PropertyType:  sl.propertyType,
			Amenities:     sl.amenities,
			IsAvailable:   true,
			HostID:        seededUsers[sl.host].ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := listingRepo.Create(ctx, l); err != nil {
			log.Fatalf("create listing %q: %v", sl.title, err)
		}
		log.Printf("Created listing: %s", l.Title)

		// Each new listing gets a completed booking from a guest who is
		// not the host, followed by a review.
		guest := seededUsers[(sl.host+1)%len(seededUsers)]
		nights := 2 + rand.Intn(4)
		checkIn := now.AddDate(0, 0, -(30 + rand.Intn(60)))
		checkOut := checkIn.AddDate(0, 0, nights)

		b := &models.Booking{
			ID:          uuid.New(),
			ListingID:   l.ID,
			GuestID:     guest.ID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			TotalPrice:  l.PricePerNight * float64(nights),
			GuestsCount: 1 + rand.Intn(l.MaxGuests),
			Status:      models.BookingStatusCompleted,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			log.Fatalf("create booking for %q: %v", l.Title, err)
		}

		rev := &models.Review{
			ID:        uuid.New(),
			BookingID: b.ID,
			ListingID: l.ID,
			GuestID:   guest.ID,
			Rating:    4 + rand.Intn(2), // 4 or 5
			Comment:   comments[rand.Intn(len(comments))],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := reviewRepo.Create(ctx, rev); err != nil {
			log.Fatalf("create review for %q: %v", l.Title, err)
		}
		log.Printf("Created booking and review for: %s", l.Title)
	}

	log.Println("Seeding complete.")
}
