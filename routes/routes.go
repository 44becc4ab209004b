package routes

import (
	"canteen-api/handlers"
	"canteen-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/auth/logout", handlers.Logout)
		auth.GET("/orders/:id/confirmation", handlers.OrderConfirmation)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired())
	{
		customer.GET("/dashboard", handlers.UserDashboard)
		customer.POST("/cart", handlers.AddToCart)
		customer.PUT("/cart/:id", handlers.UpdateCartItem)
		customer.DELETE("/cart/:id", handlers.RemoveFromCart)
		customer.DELETE("/cart", handlers.ClearCart)
		customer.GET("/checkout", handlers.CheckoutSummary)
		customer.POST("/checkout", handlers.Checkout)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api/staff")
	staff.Use(middleware.AuthRequired(), middleware.StaffRequired())
	{
		// Dashboard
		staff.GET("/dashboard", handlers.StaffDashboard)
		staff.POST("/dashboard", handlers.StaffDashboardAction)

		// Menu management
		staff.POST("/menu", handlers.AddMenuItem)
		staff.POST("/menu/:itemId/toggle", handlers.ToggleAvailability)

		// Order fulfillment
		staff.POST("/orders/:id/confirm", handlers.ConfirmOrder)
		staff.POST("/orders/:id/accept", handlers.AcceptOrder)
		staff.POST("/orders/:id/deliver", handlers.DeliverOrder)
		staff.DELETE("/orders/:id", handlers.DeleteOrder)

		// Reporting
		staff.GET("/earnings", handlers.EarningsReport)
	}
}
