package handlers

import (
	"strconv"

	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomHandler struct {
	roomService services.RoomService
}

func NewRoomHandler(roomService services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoom creates a room listing. Admin only.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.roomService.CreateRoom(c.Request.Context(), &room)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Room created successfully", created)
}

// GetRoom returns a room with its live rating aggregate.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room retrieved successfully", room)
}

// ListRooms returns paginated rooms matching the query filters.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := roomFilterFromQuery(c)

	rooms, total, err := h.roomService.ListRooms(c.Request.Context(), filter, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(rooms),
	}
	utils.SuccessResponseWithMeta(c, "Rooms retrieved successfully", rooms, meta)
}

func roomFilterFromQuery(c *gin.Context) *interfaces.RoomFilter {
	minPrice, _ := strconv.Atoi(c.Query("min_price"))
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))
	maxMinutes, _ := strconv.Atoi(c.Query("max_minutes"))

	return &interfaces.RoomFilter{
		Location:    c.Query("location"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		MaxMinutes:  maxMinutes,
		BestOnly:    c.Query("best") == "true",
		WiFi:        c.Query("wifi") == "true",
		Shower:      c.Query("shower") == "true",
		Bathtub:     c.Query("bathtub") == "true",
		Table:       c.Query("table") == "true",
		Bed:         c.Query("bed") == "true",
		Electricity: c.Query("electricity") == "true",
	}
}

// UpdateRoom applies a partial update. Admin only.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), roomID, updates)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room updated successfully", room)
}

// DeleteRoom removes a room listing. Admin only.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room deleted successfully", nil)
}
