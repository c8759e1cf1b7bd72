package routes

import (
	"unistay/internal/handlers"
	"unistay/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupDriverRoutes wires driver profiles and their ratings.
func SetupDriverRoutes(
	r *gin.RouterGroup,
	jwtSecret string,
	driverHandler *handlers.DriverHandler,
	ratingHandler *handlers.DriverRatingHandler,
) {
	// Public browsing routes
	drivers := r.Group("/drivers")
	{
		drivers.GET("", driverHandler.ListDrivers)
		drivers.GET("/available", driverHandler.GetAvailableDrivers)
		drivers.GET("/:id", driverHandler.GetDriver)
		drivers.GET("/:id/ratings", ratingHandler.GetDriverRatings)
	}

	// Student routes (require authentication)
	auth := r.Group("/drivers")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.POST("/:id/ratings", ratingHandler.SubmitRating)
		auth.GET("/:id/ratings/me", ratingHandler.GetMyRating)
		auth.DELETE("/:id/ratings/me", ratingHandler.DeleteRating)
	}

	// Admin routes for fleet management
	admin := r.Group("/admin/drivers")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", driverHandler.CreateDriver)
		admin.PUT("/:id", driverHandler.UpdateDriver)
		admin.PUT("/:id/availability", driverHandler.SetAvailability)
		admin.DELETE("/:id", driverHandler.DeleteDriver)
	}
}
