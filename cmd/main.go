// @title Staynest API
// @version 1.0
// @description Vacation-rental marketplace API: listings, bookings, and reviews.

// @contact.name API Support
// @contact.email support@staynest.local

// @license.name BSD
// @license.url https://opensource.org/licenses/BSD-3-Clause

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "STAYNEST_BACK-END/docs" // This is required for swagger
	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/database"
	"STAYNEST_BACK-END/internal/handlers"
	"STAYNEST_BACK-END/internal/repository"
	"STAYNEST_BACK-END/internal/routes"
	"STAYNEST_BACK-END/internal/utils"
)

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
	log.Println("Connected to PostgreSQL")

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Wire up layers
	userRepo := repository.NewUserRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	var mailer handlers.BookingMailer
	if cfg.IsEmailConfigured() {
		mailer = utils.NewEmailService(&cfg.Email)
	}

	h := routes.Handlers{
		Overview:   handlers.NewOverviewHandler(cfg.Docs),
		Health:     handlers.NewHealthHandler(pool),
		Auth:       handlers.NewAuthHandler(userRepo, &cfg.JWT),
		GoogleAuth: handlers.NewGoogleAuthHandler(userRepo, &cfg.GoogleOAuth, &cfg.JWT),
		Listings:   handlers.NewListingsHandler(listingRepo, bookingRepo, reviewRepo, userRepo),
		Bookings:   handlers.NewBookingsHandler(bookingRepo, listingRepo, userRepo, mailer),
		Reviews:    handlers.NewReviewsHandler(reviewRepo, bookingRepo, listingRepo, userRepo),
	}

	router := routes.New(cfg, h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}).Handler(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("Server listening on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
