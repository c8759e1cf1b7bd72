package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideHandler struct {
	rideService services.RideService
}

func NewRideHandler(rideService services.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// GetQuote computes distance, price estimate and similar rides for a trip.
func (h *RideHandler) GetQuote(c *gin.Context) {
	var req services.RideQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	quote, err := h.rideService.ComputeRideQuote(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Quote calculated successfully", quote)
}

type contactRequest struct {
	Contact string `json:"contact"`
}

// RequestRide books a new ride for the caller.
func (h *RideHandler) RequestRide(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req struct {
		services.RideRequest
		Contact string `json:"contact"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	student := &services.Passenger{
		StudentID:      user.ID,
		StudentName:    user.Name,
		StudentContact: req.Contact,
	}

	ride, err := h.rideService.RequestRide(c.Request.Context(), student, &req.RideRequest)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Ride requested successfully", ride)
}

func (h *RideHandler) GetRide(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	ride, err := h.rideService.GetRide(c.Request.Context(), rideID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride retrieved successfully", ride)
}

// GetMyRides lists the caller's rides.
func (h *RideHandler) GetMyRides(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	rides, total, err := h.rideService.GetStudentRides(c.Request.Context(), user.ID, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(rides),
	}
	utils.SuccessResponseWithMeta(c, "Rides retrieved successfully", rides, meta)
}

// ListRides lists all rides. Admin only.
func (h *RideHandler) ListRides(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rides, total, err := h.rideService.ListRides(c.Request.Context(), params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(rides),
	}
	utils.SuccessResponseWithMeta(c, "Rides retrieved successfully", rides, meta)
}

type assignDriverRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
}

// AssignDriver attaches an available driver to a pending ride. Admin only.
func (h *RideHandler) AssignDriver(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	var req assignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	driverID, err := primitive.ObjectIDFromHex(req.DriverID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	ride, err := h.rideService.AssignDriver(c.Request.Context(), rideID, driverID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver assigned successfully", ride)
}

type updateStatusRequest struct {
	Status      models.RideStatus `json:"status" binding:"required"`
	ActualPrice *float64          `json:"actual_price"`
}

// UpdateStatus moves a ride along its lifecycle.
func (h *RideHandler) UpdateStatus(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.UpdateStatus(c.Request.Context(), rideID, req.Status, req.ActualPrice)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride status updated successfully", ride)
}

type rateRideRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

// RateRide records a post-completion rating on the ride itself.
func (h *RideHandler) RateRide(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	var req rateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.RateRide(c.Request.Context(), rideID, req.Rating, req.Feedback)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride rated successfully", ride)
}

// FindSharedRides searches open shared rides near the caller's trip.
func (h *RideHandler) FindSharedRides(c *gin.Context) {
	var search services.SharedRideSearch
	if err := c.ShouldBindQuery(&search); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	rides, err := h.rideService.FindSharedRides(c.Request.Context(), &search)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Shared rides retrieved successfully", rides)
}

type joinSharedRequest struct {
	Contact         string          `json:"contact"`
	PickupLocation  models.GeoPoint `json:"pickup_location" binding:"required"`
	DropoffLocation models.GeoPoint `json:"dropoff_location" binding:"required"`
}

// JoinSharedRide adds the caller as a shared passenger.
func (h *RideHandler) JoinSharedRide(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req joinSharedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.JoinSharedRide(c.Request.Context(), rideID, &services.Passenger{
		StudentID:       user.ID,
		StudentName:     user.Name,
		StudentContact:  req.Contact,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Joined shared ride successfully", ride)
}

// JoinSplitFare adds the caller as a split-fare participant.
func (h *RideHandler) JoinSplitFare(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.JoinSplitFare(c.Request.Context(), rideID, &services.Passenger{
		StudentID:      user.ID,
		StudentName:    user.Name,
		StudentContact: req.Contact,
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Joined split fare successfully", ride)
}
