package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverHandler struct {
	driverService services.DriverService
}

func NewDriverHandler(driverService services.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// CreateDriver registers a driver. Admin only.
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.driverService.CreateDriver(c.Request.Context(), &driver)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Driver created successfully", created)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), driverID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver retrieved successfully", driver)
}

func (h *DriverHandler) ListDrivers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	drivers, total, err := h.driverService.ListDrivers(c.Request.Context(), params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(drivers),
	}
	utils.SuccessResponseWithMeta(c, "Drivers retrieved successfully", drivers, meta)
}

// GetAvailableDrivers lists active drivers currently taking rides.
func (h *DriverHandler) GetAvailableDrivers(c *gin.Context) {
	drivers, err := h.driverService.GetAvailableDrivers(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Available drivers retrieved successfully", drivers)
}

// UpdateDriver applies a partial update. Admin only.
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), driverID, updates)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver updated successfully", driver)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability flips a driver's availability flag. Admin only.
func (h *DriverHandler) SetAvailability(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.driverService.SetAvailability(c.Request.Context(), driverID, *req.IsAvailable); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver availability updated successfully", nil)
}

// DeleteDriver removes a driver. Admin only.
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	if err := h.driverService.DeleteDriver(c.Request.Context(), driverID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver deleted successfully", nil)
}
