package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingHandler struct {
	ratingService services.RatingService
}

func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type submitRatingRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// SubmitRating creates or overwrites the caller's rating for a room.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	rating := &models.Rating{
		RoomID:    roomID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserImage: user.Image,
		Rating:    req.Rating,
		Review:    req.Review,
	}

	created, err := h.ratingService.SubmitRating(c.Request.Context(), rating)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	if created {
		utils.CreatedResponse(c, "Rating submitted successfully", rating)
		return
	}
	utils.SuccessResponse(c, "Rating updated successfully", rating)
}

// GetRoomRatings returns a room's ratings plus the recomputed aggregate.
func (h *RatingHandler) GetRoomRatings(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	params := utils.GetPaginationParams(c)
	summary, total, err := h.ratingService.GetRoomRatings(c.Request.Context(), roomID, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(summary.Ratings),
	}
	utils.SuccessResponseWithMeta(c, "Ratings retrieved successfully", summary, meta)
}

// GetMyRating returns the caller's own rating for a room.
func (h *RatingHandler) GetMyRating(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	rating, err := h.ratingService.GetUserRating(c.Request.Context(), roomID, user.ID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Rating retrieved successfully", rating)
}

// DeleteRating removes the caller's rating for a room.
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), roomID, user.ID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Rating deleted successfully", nil)
}
