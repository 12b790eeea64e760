package routes

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/handlers"
	"STAYNEST_BACK-END/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Overview   *handlers.OverviewHandler
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	GoogleAuth *handlers.GoogleAuthHandler
	Listings   *handlers.ListingsHandler
	Bookings   *handlers.BookingsHandler
	Reviews    *handlers.ReviewsHandler
}

// New builds the application router
func New(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.StripSlashes)

	requireAuth := middleware.RequireAuth(&cfg.JWT)
	optionalAuth := middleware.OptionalAuth(&cfg.JWT)

	// Root overview and health
	r.Get("/", h.Overview.Overview)
	r.Get("/healthz", h.Health.HealthCheck)
	r.Get("/livez", h.Health.LivenessCheck)
	r.Get("/readyz", h.Health.ReadinessCheck)

	r.Route("/api", func(r chi.Router) {
		// Authentication
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(requireAuth).Get("/profile", h.Auth.Profile)
			if cfg.IsGoogleOAuthConfigured() {
				r.Get("/google/login", h.GoogleAuth.GoogleLogin)
				r.Get("/google/callback", h.GoogleAuth.GoogleCallback)
			}
		})

		// Listings: public reads, auth-gated writes
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", h.Listings.ListListings)
			r.With(requireAuth).Post("/", h.Listings.CreateListing)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Listings.ListingDetail)
				r.Get("/bookings", h.Listings.ListingBookings)
				r.Get("/reviews", h.Listings.ListingReviews)
				r.With(requireAuth).Put("/", h.Listings.UpdateListing)
				r.With(requireAuth).Patch("/", h.Listings.UpdateListing)
				r.With(requireAuth).Delete("/", h.Listings.DeleteListing)
			})
		})

		// Bookings: everything requires authentication
		r.Route("/bookings", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", h.Bookings.ListBookings)
			r.Post("/", h.Bookings.CreateBooking)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Bookings.BookingDetail)
				r.Put("/", h.Bookings.UpdateBooking)
				r.Patch("/", h.Bookings.UpdateBooking)
				r.Delete("/", h.Bookings.DeleteBooking)
			})
		})

		// Reviews: public reads (identity narrows the visible set),
		// auth-gated writes
		r.Route("/reviews", func(r chi.Router) {
			r.With(optionalAuth).Get("/", h.Reviews.ListReviews)
			r.With(requireAuth).Post("/", h.Reviews.CreateReview)
			r.Route("/{id}", func(r chi.Router) {
				r.With(optionalAuth).Get("/", h.Reviews.ReviewDetail)
				r.With(requireAuth).Put("/", h.Reviews.UpdateReview)
				r.With(requireAuth).Patch("/", h.Reviews.UpdateReview)
				r.With(requireAuth).Delete("/", h.Reviews.DeleteReview)
			})
		})
	})

	if cfg.Docs.Enabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	return r
}
