package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tumy/handlers"
	"tumy/middleware"
)

// RegisterCatalogRoutes registers the browse/search surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.SessionMiddleware(hb.Sessions))
		api.GET("/services", hb.Catalog.ListServices)
		api.POST("/categories/toggle", hb.Catalog.ToggleCategory)
		api.POST("/search", hb.Catalog.Search)
		api.DELETE("/search", hb.Catalog.ClearSearch)
		api.GET("/products", hb.Catalog.ListProducts)
		api.GET("/providers", hb.Catalog.ListProviders)
		api.GET("/providers/:id", hb.Catalog.GetProvider)
		api.GET("/reviews", hb.Catalog.ListReviews)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.SessionMiddleware(hb.Sessions))
		api.GET("/state", hb.Booking.GetState)
		api.POST("/open", hb.Booking.Open)
		api.POST("/back", hb.Booking.Back)
		api.POST("/date", hb.Booking.SelectDate)
		api.POST("/month", hb.Booking.ChangeMonth)
		api.POST("/slot", hb.Booking.SelectSlot)
		api.POST("/pick-and-drop", hb.Booking.SetPickAndDrop)
		api.POST("/confirm", hb.Booking.Confirm)
		api.POST("/reset", hb.Booking.Reset)
	}
}

// RegisterRegisterRoutes registers the wishlist and cart endpoints.
func RegisterRegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wishlist := r.Group("/api/wishlist")
	{
		wishlist.Use(middleware.SessionMiddleware(hb.Sessions))
		wishlist.GET("", hb.Wishlist.Get)
		wishlist.POST("/toggle", hb.Wishlist.Toggle)
	}
	cart := r.Group("/api/cart")
	{
		cart.Use(middleware.SessionMiddleware(hb.Sessions))
		cart.GET("", hb.Cart.Get)
		cart.POST("/items", hb.Cart.Add)
		cart.DELETE("/items/:index", hb.Cart.Remove)
		cart.POST("/checkout", hb.Cart.Checkout)
		cart.POST("/done", hb.Cart.Done)
	}
}

// RegisterAIRoutes registers the concierge endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.SessionMiddleware(hb.Sessions))
		api.GET("/chat", hb.Concierge.GetTranscript)
		api.POST("/chat", hb.Concierge.SendMessage)
		api.POST("/recommend", hb.Concierge.Recommend)
	}
}

// RegisterProfileRoutes registers the profile and rewards endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.SessionMiddleware(hb.Sessions))
		api.GET("", hb.Profile.Get)
		api.PUT("", hb.Profile.Update)
		api.GET("/rewards", hb.Profile.Rewards)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tumy"})
	})
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("/services", hb.Admin.AddService)
		protected.POST("/products", hb.Admin.AddProduct)
		protected.GET("/bookings", hb.Admin.ListBookings)
		protected.POST("/bookings/:id/cycle", hb.Admin.CycleBooking)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRegisterRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb)
}
