package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRatingHandler struct {
	ratingService services.DriverRatingService
}

func NewDriverRatingHandler(ratingService services.DriverRatingService) *DriverRatingHandler {
	return &DriverRatingHandler{ratingService: ratingService}
}

// SubmitRating creates or overwrites the caller's rating for a driver and
// synchronizes the driver's displayed average.
func (h *DriverRatingHandler) SubmitRating(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
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

	rating := &models.DriverRating{
		DriverID:  driverID,
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
		utils.CreatedResponse(c, "Driver rating submitted successfully", rating)
		return
	}
	utils.SuccessResponse(c, "Driver rating updated successfully", rating)
}

func (h *DriverRatingHandler) GetDriverRatings(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	params := utils.GetPaginationParams(c)
	ratings, total, err := h.ratingService.GetDriverRatings(c.Request.Context(), driverID, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(ratings),
	}
	utils.SuccessResponseWithMeta(c, "Driver ratings retrieved successfully", ratings, meta)
}

func (h *DriverRatingHandler) GetMyRating(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	rating, err := h.ratingService.GetUserRating(c.Request.Context(), driverID, user.ID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver rating retrieved successfully", rating)
}

func (h *DriverRatingHandler) DeleteRating(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), driverID, user.ID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver rating deleted successfully", nil)
}
