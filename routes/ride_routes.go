package routes

import (
	"unistay/internal/handlers"
	"unistay/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRideRoutes wires quoting, booking, shared rides and split fares.
func SetupRideRoutes(r *gin.RouterGroup, jwtSecret string, rideHandler *handlers.RideHandler) {
	rides := r.Group("/rides")
	rides.Use(middleware.AuthRequired(jwtSecret))
	{
		rides.POST("/calculate", rideHandler.GetQuote)
		rides.POST("", rideHandler.RequestRide)
		rides.GET("/my", rideHandler.GetMyRides)
		rides.GET("/shared/search", rideHandler.FindSharedRides)
		rides.GET("/:id", rideHandler.GetRide)
		rides.POST("/:id/shared-join", rideHandler.JoinSharedRide)
		rides.POST("/:id/split-join", rideHandler.JoinSplitFare)
		rides.POST("/:id/rate", rideHandler.RateRide)
		rides.PATCH("/:id/status", rideHandler.UpdateStatus)
	}

	// Admin routes for dispatch
	admin := r.Group("/admin/rides")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", rideHandler.ListRides)
		admin.PATCH("/:id/assign", rideHandler.AssignDriver)
	}
}
