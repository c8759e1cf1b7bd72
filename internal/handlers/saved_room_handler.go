package handlers

import (
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedRoomHandler struct {
	savedRoomService services.SavedRoomService
}

func NewSavedRoomHandler(savedRoomService services.SavedRoomService) *SavedRoomHandler {
	return &SavedRoomHandler{savedRoomService: savedRoomService}
}

// SaveRoom bookmarks a room for the caller.
func (h *SavedRoomHandler) SaveRoom(c *gin.Context) {
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

	if err := h.savedRoomService.SaveRoom(c.Request.Context(), user.ID, roomID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Room saved successfully", nil)
}

// UnsaveRoom removes the caller's bookmark.
func (h *SavedRoomHandler) UnsaveRoom(c *gin.Context) {
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

	if err := h.savedRoomService.UnsaveRoom(c.Request.Context(), user.ID, roomID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room unsaved successfully", nil)
}

// GetSavedRooms lists the caller's bookmarks with room details joined in.
func (h *SavedRoomHandler) GetSavedRooms(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	saved, err := h.savedRoomService.GetSavedRooms(c.Request.Context(), user.ID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Saved rooms retrieved successfully", saved)
}

// IsSaved reports whether the caller has bookmarked a room.
func (h *SavedRoomHandler) IsSaved(c *gin.Context) {
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

	saved, err := h.savedRoomService.IsSaved(c.Request.Context(), user.ID, roomID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Saved state retrieved successfully", gin.H{"is_saved": saved})
}
