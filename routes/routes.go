package routes

import (
	"net/http"
	"time"

	"sparklean/handlers"
	"sparklean/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPricingRoutes registers the pricing table and quote endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.GET("", hb.Pricing.GetPricingHandler)
		api.POST("/quote", hb.Pricing.QuoteHandler)

		// Table management is back-office only.
		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.Pricing.SavePriceHandler)
		admin.POST("/schedule", hb.Pricing.ScheduleFuturePriceHandler)
		admin.GET("/scheduled", hb.Pricing.ScheduledPricesHandler)
		admin.DELETE("/:id", hb.Pricing.DeactivatePriceHandler)
	}
}

// RegisterBookingRoutes registers booking creation and lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id/status", hb.Booking.UpdateBookingStatusHandler)
		api.GET("/:id/team", hb.Team.GetTeamHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.PUT("/:id/team", hb.Team.AssignTeamHandler)
	}
}

// RegisterCleanerRoutes registers the cleaner earnings views.
func RegisterCleanerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cleaners")
	{
		api.GET("/:id/earnings", hb.Cleaner.EarningsHandler)
		api.GET("/:id/payments", hb.Cleaner.PaymentsHandler)
	}
}

// RegisterScheduleRoutes registers recurring-schedule management.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/recurring-schedules")
	{
		api.POST("", hb.Schedule.CreateScheduleHandler)
		api.GET("/:id", hb.Schedule.GetScheduleHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("/:id/generate", hb.Schedule.GenerateHandler)
		admin.PATCH("/:id/active", hb.Schedule.SetActiveHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires global middleware and every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPricingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCleanerRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
