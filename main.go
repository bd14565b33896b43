// File: tumy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tumy/config"
	"tumy/handlers"
	"tumy/middleware"
	"tumy/routes"
	"tumy/services/catalog"
	"tumy/services/checkout"
	"tumy/services/concierge"
	"tumy/services/relay"
	"tumy/services/session"
	"tumy/services/wizard"
	"tumy/store"
	"tumy/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// In-memory stores seeded with the launch inventory.
	catalogStore := store.NewCatalog()
	bookingLedger := store.NewBookings()

	// Fire-and-forget relay sink for booking/order/profile submissions.
	sink := relay.NewClient(config.AppConfig.RelayEndpoint)

	// Concierge degrades to canned copy when no API key is configured.
	conciergeSvc := concierge.NewService(config.AppConfig.GeminiAPIKey)
	searcher := catalog.NewSearcher(conciergeSvc)

	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	sessionManager := session.NewManager(catalogStore, sink,
		wizard.Config{
			ProbeDelay:      ms(config.AppConfig.AvailabilityProbeMS),
			ProcessingDelay: ms(config.AppConfig.BookingProcessingMS),
		},
		checkout.Config{
			ProcessingDelay: ms(config.AppConfig.CheckoutProcessingMS),
			CartClearDelay:  ms(config.AppConfig.CartClearMS),
		},
		ms(config.AppConfig.ProfileSaveMS),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions:  sessionManager,
		Catalog:   handlers.NewCatalogHandler(catalogStore, searcher),
		Booking:   handlers.NewBookingHandler(catalogStore),
		Wishlist:  handlers.NewWishlistHandler(catalogStore),
		Cart:      handlers.NewCartHandler(catalogStore),
		Concierge: handlers.NewConciergeHandler(conciergeSvc, catalogStore),
		Profile:   handlers.NewProfileHandler(sessionManager, bookingLedger),
		Admin:     handlers.NewAdminHandler(catalogStore, bookingLedger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
