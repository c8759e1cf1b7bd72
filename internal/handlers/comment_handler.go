package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment posts a comment under a room listing.
func (h *CommentHandler) AddComment(c *gin.Context) {
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

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	comment := &models.Comment{
		RoomID:   roomID,
		UserID:   user.ID,
		UserName: user.Name,
		ImageURL: user.Image,
		Content:  req.Content,
	}

	created, err := h.commentService.AddComment(c.Request.Context(), comment)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Comment added successfully", created)
}

func (h *CommentHandler) GetRoomComments(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	params := utils.GetPaginationParams(c)
	comments, total, err := h.commentService.GetRoomComments(c.Request.Context(), roomID, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(comments),
	}
	utils.SuccessResponseWithMeta(c, "Comments retrieved successfully", comments, meta)
}

// DeleteComment removes the caller's own comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("comment_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid comment ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, user.ID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Comment deleted successfully", nil)
}
