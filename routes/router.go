package routes

import (
	"net/http"

	"unistay/internal/config"
	"unistay/internal/handlers"
	"unistay/internal/middleware"
	"unistay/internal/utils"
	"unistay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every resource handler for router assembly.
type Handlers struct {
	Room         *handlers.RoomHandler
	Rating       *handlers.RatingHandler
	Comment      *handlers.CommentHandler
	SavedRoom    *handlers.SavedRoomHandler
	Driver       *handlers.DriverHandler
	DriverRating *handlers.DriverRatingHandler
	Ride         *handlers.RideHandler
	Feedback     *handlers.FeedbackHandler
	FAQ          *handlers.FAQHandler
	Stats        *handlers.StatsHandler
}

// NewRouter builds the gin engine with global middleware and the full
// /api/v1 surface.
func NewRouter(cfg *config.Config, log *logger.Logger, h *Handlers) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	var origin string
	if len(cfg.Security.CORSAllowedOrigins) > 0 {
		origin = cfg.Security.CORSAllowedOrigins[0]
	}
	router.Use(middleware.CORSMiddleware(origin))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    utils.AppName,
			"version": utils.AppVersion,
		})
	})

	secret := cfg.Security.JWTSecret
	v1 := router.Group("/api/v1")
	{
		SetupRoomRoutes(v1, secret, h.Room, h.Rating, h.Comment, h.SavedRoom)
		SetupDriverRoutes(v1, secret, h.Driver, h.DriverRating)
		SetupRideRoutes(v1, secret, h.Ride)
		SetupFeedbackRoutes(v1, secret, h.Feedback)
		SetupFAQRoutes(v1, secret, h.FAQ)

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(secret), middleware.AdminRequired())
		{
			admin.GET("/statistics", h.Stats.GetPlatformStats)
		}
	}

	return router
}
