package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type submitFeedbackRequest struct {
	WebsiteRating int    `json:"website_rating" binding:"required"`
	Review        string `json:"review"`
	StudyYear     string `json:"study_year"`
	RoomType      string `json:"room_type"`
	IsPublic      *bool  `json:"is_public"`
}

// SubmitFeedback records the caller's one-time website review.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	// Feedback is public unless the caller explicitly opts out.
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	feedback := &models.Feedback{
		UserID:        user.ID,
		UserName:      user.Name,
		WebsiteRating: req.WebsiteRating,
		Review:        req.Review,
		StudyYear:     req.StudyYear,
		RoomType:      req.RoomType,
		IsPublic:      isPublic,
	}

	created, err := h.feedbackService.SubmitFeedback(c.Request.Context(), feedback)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Feedback submitted successfully", created)
}

// GetMyFeedback returns the caller's own feedback entry.
func (h *FeedbackHandler) GetMyFeedback(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	feedback, err := h.feedbackService.GetUserFeedback(c.Request.Context(), user.ID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Feedback retrieved successfully", feedback)
}

// ListPublicFeedback returns approved public testimonials.
func (h *FeedbackHandler) ListPublicFeedback(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	feedback, total, err := h.feedbackService.ListPublicFeedback(c.Request.Context(), params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(feedback),
	}
	utils.SuccessResponseWithMeta(c, "Feedback retrieved successfully", feedback, meta)
}

// ListAllFeedback returns everything including unapproved entries. Admin only.
func (h *FeedbackHandler) ListAllFeedback(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	feedback, total, err := h.feedbackService.ListAllFeedback(c.Request.Context(), params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(feedback),
	}
	utils.SuccessResponseWithMeta(c, "Feedback retrieved successfully", feedback, meta)
}

type approveFeedbackRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// ApproveFeedback flips the moderation flag. Admin only.
func (h *FeedbackHandler) ApproveFeedback(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid feedback ID")
		return
	}

	var req approveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.feedbackService.ApproveFeedback(c.Request.Context(), feedbackID, *req.IsApproved); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Feedback approval updated successfully", nil)
}

// DeleteFeedback removes an entry. Admin only.
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	feedbackID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid feedback ID")
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), feedbackID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Feedback deleted successfully", nil)
}
