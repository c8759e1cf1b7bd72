package routes

import (
	"unistay/internal/handlers"
	"unistay/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoomRoutes wires room listings plus their rating, comment and bookmark
// sub-resources.
func SetupRoomRoutes(
	r *gin.RouterGroup,
	jwtSecret string,
	roomHandler *handlers.RoomHandler,
	ratingHandler *handlers.RatingHandler,
	commentHandler *handlers.CommentHandler,
	savedRoomHandler *handlers.SavedRoomHandler,
) {
	// Public browsing routes
	rooms := r.Group("/rooms")
	{
		rooms.GET("", roomHandler.ListRooms)
		rooms.GET("/:id", roomHandler.GetRoom)
		rooms.GET("/:id/ratings", ratingHandler.GetRoomRatings)
		rooms.GET("/:id/comments", commentHandler.GetRoomComments)
	}

	// Student routes (require authentication)
	auth := r.Group("/rooms")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.POST("/:id/ratings", ratingHandler.SubmitRating)
		auth.GET("/:id/ratings/me", ratingHandler.GetMyRating)
		auth.DELETE("/:id/ratings/me", ratingHandler.DeleteRating)

		auth.POST("/:id/comments", commentHandler.AddComment)

		auth.POST("/:id/save", savedRoomHandler.SaveRoom)
		auth.DELETE("/:id/save", savedRoomHandler.UnsaveRoom)
		auth.GET("/:id/save", savedRoomHandler.IsSaved)
	}

	comments := r.Group("/comments")
	comments.Use(middleware.AuthRequired(jwtSecret))
	{
		comments.DELETE("/:comment_id", commentHandler.DeleteComment)
	}

	saved := r.Group("/saved-rooms")
	saved.Use(middleware.AuthRequired(jwtSecret))
	{
		saved.GET("", savedRoomHandler.GetSavedRooms)
	}

	// Admin routes for listing management
	admin := r.Group("/admin/rooms")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", roomHandler.CreateRoom)
		admin.PUT("/:id", roomHandler.UpdateRoom)
		admin.DELETE("/:id", roomHandler.DeleteRoom)
	}
}
