package routes

import (
	"unistay/internal/handlers"
	"unistay/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupFeedbackRoutes wires website feedback and its moderation surface.
func SetupFeedbackRoutes(r *gin.RouterGroup, jwtSecret string, feedbackHandler *handlers.FeedbackHandler) {
	feedback := r.Group("/feedback")
	{
		feedback.GET("/public", feedbackHandler.ListPublicFeedback)
	}

	auth := r.Group("/feedback")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.POST("", feedbackHandler.SubmitFeedback)
		auth.GET("/me", feedbackHandler.GetMyFeedback)
	}

	admin := r.Group("/admin/feedback")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", feedbackHandler.ListAllFeedback)
		admin.PUT("/:id/approval", feedbackHandler.ApproveFeedback)
		admin.DELETE("/:id", feedbackHandler.DeleteFeedback)
	}
}
