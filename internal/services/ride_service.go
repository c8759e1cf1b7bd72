package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"
	"unistay/pkg/logger"
	"unistay/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinate fields carry no "required" binding so that 0 stays a legal
// latitude or longitude; ComputeRideQuote range-checks them instead.
type RideQuoteRequest struct {
	PickupLat     float64   `json:"pickup_lat"`
	PickupLng     float64   `json:"pickup_lng"`
	DropoffLat    float64   `json:"dropoff_lat"`
	DropoffLng    float64   `json:"dropoff_lng"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

type RideQuote struct {
	Distance         float64              `json:"distance"`
	Duration         string               `json:"duration"`
	EstimatedPrice   float64              `json:"estimated_price"`
	AvailableDrivers int                  `json:"available_drivers"`
	SimilarRides     []models.SimilarRide `json:"similar_rides"`
}

type RideRequest struct {
	PickupLocation  models.GeoPoint    `json:"pickup_location" binding:"required"`
	DropoffLocation models.GeoPoint    `json:"dropoff_location" binding:"required"`
	Distance        float64            `json:"distance"`
	EstimatedPrice  float64            `json:"estimated_price"`
	ScheduledTime   time.Time          `json:"scheduled_time" binding:"required"`
	BookingType     models.BookingType `json:"booking_type"`

	GroupSize      int                    `json:"group_size"`
	LuggageCount   int                    `json:"luggage_count"`
	FurnitureItems []models.FurnitureItem `json:"furniture_items"`
	Semester       string                 `json:"semester"`
	AcademicYear   string                 `json:"academic_year"`
	HolidayType    string                 `json:"holiday_type"`

	SplitFareEnabled      bool `json:"split_fare_enabled"`
	SplitFareParticipants int  `json:"split_fare_participants"`
	IsSharedRide          bool `json:"is_shared_ride"`
	MaxSharedPassengers   int  `json:"max_shared_passengers"`
}

// Passenger identifies the student joining a shared ride or split fare;
// identity fields are denormalized from the authenticated caller.
type Passenger struct {
	StudentID       string          `json:"student_id"`
	StudentName     string          `json:"student_name"`
	StudentContact  string          `json:"student_contact"`
	PickupLocation  models.GeoPoint `json:"pickup_location"`
	DropoffLocation models.GeoPoint `json:"dropoff_location"`
}

// FindSharedRides range-checks the coordinates, so they bind without
// "required" and 0 remains a legal value.
type SharedRideSearch struct {
	PickupLat     float64   `form:"pickup_lat"`
	PickupLng     float64   `form:"pickup_lng"`
	DropoffLat    float64   `form:"dropoff_lat"`
	DropoffLng    float64   `form:"dropoff_lng"`
	ScheduledTime time.Time `form:"scheduled_time" binding:"required"`
}

type RideService interface {
	ComputeRideQuote(ctx context.Context, req *RideQuoteRequest) (*RideQuote, error)
	RequestRide(ctx context.Context, student *Passenger, req *RideRequest) (*models.Ride, error)
	AssignDriver(ctx context.Context, rideID, driverID primitive.ObjectID) (*models.Ride, error)
	UpdateStatus(ctx context.Context, rideID primitive.ObjectID, status models.RideStatus, actualPrice *float64) (*models.Ride, error)
	RateRide(ctx context.Context, rideID primitive.ObjectID, rating int, feedback string) (*models.Ride, error)

	FindSharedRides(ctx context.Context, search *SharedRideSearch) ([]*models.Ride, error)
	JoinSharedRide(ctx context.Context, rideID primitive.ObjectID, passenger *Passenger) (*models.Ride, error)
	JoinSplitFare(ctx context.Context, rideID primitive.ObjectID, participant *Passenger) (*models.Ride, error)

	GetRide(ctx context.Context, rideID primitive.ObjectID) (*models.Ride, error)
	ListRides(ctx context.Context, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	GetStudentRides(ctx context.Context, studentID string, params *utils.PaginationParams) ([]*models.Ride, int64, error)
}

type rideService struct {
	rideRepo   interfaces.RideRepository
	driverRepo interfaces.DriverRepository
	maps       maps.DistanceProvider
	logger     *logger.Logger
}

func NewRideService(
	rideRepo interfaces.RideRepository,
	driverRepo interfaces.DriverRepository,
	mapsProvider maps.DistanceProvider,
	log *logger.Logger,
) RideService {
	return &rideService{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		maps:       mapsProvider,
		logger:     log,
	}
}

func (s *rideService) ComputeRideQuote(ctx context.Context, req *RideQuoteRequest) (*RideQuote, error) {
	if !utils.IsValidCoordinates(req.PickupLat, req.PickupLng) || !utils.IsValidCoordinates(req.DropoffLat, req.DropoffLng) {
		return nil, fmt.Errorf("invalid coordinates: %w", apperrors.ErrValidation)
	}

	if s.maps == nil {
		return nil, fmt.Errorf("distance service credential not configured: %w", apperrors.ErrConfig)
	}

	result, err := s.maps.CalculateDistance(ctx, &maps.DistanceRequest{
		Origin:      maps.Location{Latitude: req.PickupLat, Longitude: req.PickupLng},
		Destination: maps.Location{Latitude: req.DropoffLat, Longitude: req.DropoffLng},
		Mode:        "driving",
	})
	if err != nil {
		return nil, fmt.Errorf("distance service: %v: %w", err, apperrors.ErrExternalService)
	}

	drivers, err := s.driverRepo.GetAvailableActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load available drivers: %w", err)
	}

	estimatedPrice := math.Round(result.DistanceKm * averagePricePerKm(drivers))

	similar, err := s.findSimilarRides(ctx, req.DropoffLat, req.DropoffLng, req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	return &RideQuote{
		Distance:         result.DistanceKm,
		Duration:         result.DurationText,
		EstimatedPrice:   estimatedPrice,
		AvailableDrivers: len(drivers),
		SimilarRides:     similar,
	}, nil
}

// averagePricePerKm is the arithmetic mean over available active drivers,
// falling back to the default rate when none exist.
func averagePricePerKm(drivers []*models.Driver) float64 {
	if len(drivers) == 0 {
		return models.DefaultPricePerKm
	}

	var total float64
	for _, d := range drivers {
		total += d.PricePerKm
	}
	return total / float64(len(drivers))
}

// findSimilarRides matches pending or accepted rides scheduled on the same
// calendar day whose dropoff falls inside the 2 km bounding box.
func (s *rideService) findSimilarRides(ctx context.Context, dropoffLat, dropoffLng float64, scheduledDate time.Time) ([]models.SimilarRide, error) {
	dayStart := time.Date(scheduledDate.Year(), scheduledDate.Month(), scheduledDate.Day(), 0, 0, 0, 0, scheduledDate.Location())
	dayEnd := time.Date(scheduledDate.Year(), scheduledDate.Month(), scheduledDate.Day(), 23, 59, 59, 0, scheduledDate.Location())

	rides, err := s.rideRepo.FindSimilar(ctx, &interfaces.SimilarRideQuery{
		DayStart:   dayStart,
		DayEnd:     dayEnd,
		DropoffBox: utils.BoxAround(dropoffLat, dropoffLng, utils.SimilarRideRadiusKm),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find similar rides: %w", err)
	}

	similar := make([]models.SimilarRide, 0, len(rides))
	for _, ride := range rides {
		driverName := "Not assigned"
		if ride.DriverID != nil {
			driver, err := s.driverRepo.GetByID(ctx, *ride.DriverID)
			if err == nil {
				driverName = driver.FullName
			}
		}

		similar = append(similar, models.SimilarRide{
			ID:              ride.ID,
			PickupLocation:  ride.PickupLocation,
			DropoffLocation: ride.DropoffLocation,
			ScheduledTime:   ride.ScheduledTime,
			Status:          ride.Status,
			EstimatedPrice:  ride.EstimatedPrice,
			DriverName:      driverName,
		})
	}

	return similar, nil
}

func (s *rideService) RequestRide(ctx context.Context, student *Passenger, req *RideRequest) (*models.Ride, error) {
	if err := validateRideRequest(req); err != nil {
		return nil, err
	}

	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = models.BookingTypeRegular
	}

	ride := &models.Ride{
		StudentID:       student.StudentID,
		StudentName:     student.StudentName,
		StudentContact:  student.StudentContact,
		DriverID:        nil,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Distance:        req.Distance,
		EstimatedPrice:  req.EstimatedPrice,
		Status:          models.RideStatusPending,
		ScheduledTime:   req.ScheduledTime,
		BookingType:     bookingType,
		GroupSize:       req.GroupSize,
		LuggageCount:    req.LuggageCount,
		FurnitureItems:  req.FurnitureItems,
		Semester:        req.Semester,
		AcademicYear:    req.AcademicYear,
		HolidayType:     req.HolidayType,
		IsSharedRide:    req.IsSharedRide,
	}

	if req.IsSharedRide {
		ride.MaxSharedPassengers = req.MaxSharedPassengers
		ride.SharedPassengers = []models.SharedPassenger{}
	}

	if req.SplitFareEnabled {
		ride.SplitFare = &models.SplitFare{
			Enabled:           true,
			TotalParticipants: req.SplitFareParticipants,
			Participants:      []models.SplitFareParticipant{},
			IsOpen:            true,
		}
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	return ride, nil
}

func validateRideRequest(req *RideRequest) error {
	if !utils.IsValidCoordinates(req.PickupLocation.Lat, req.PickupLocation.Lng) ||
		!utils.IsValidCoordinates(req.DropoffLocation.Lat, req.DropoffLocation.Lng) {
		return fmt.Errorf("invalid pickup or dropoff coordinates: %w", apperrors.ErrValidation)
	}
	if req.ScheduledTime.IsZero() {
		return fmt.Errorf("scheduled time is required: %w", apperrors.ErrValidation)
	}
	if req.BookingType != "" && !req.BookingType.IsValid() {
		return fmt.Errorf("unknown booking type %q: %w", req.BookingType, apperrors.ErrValidation)
	}

	switch req.BookingType {
	case models.BookingTypeSemesterMoveIn, models.BookingTypeSemesterMoveOut:
		if req.Semester == "" || req.AcademicYear == "" {
			return fmt.Errorf("semester and academic year are required for semester moves: %w", apperrors.ErrValidation)
		}
	case models.BookingTypeHolidayTransport:
		if req.HolidayType == "" {
			return fmt.Errorf("holiday type is required for holiday transport: %w", apperrors.ErrValidation)
		}
	case models.BookingTypeGroupBooking:
		if req.GroupSize < 2 {
			return fmt.Errorf("group bookings need a group size of at least 2: %w", apperrors.ErrValidation)
		}
	}

	if req.IsSharedRide && req.MaxSharedPassengers < 1 {
		return fmt.Errorf("shared rides need at least one shared passenger slot: %w", apperrors.ErrValidation)
	}
	if req.SplitFareEnabled && req.SplitFareParticipants < 2 {
		return fmt.Errorf("split fare needs at least 2 participants: %w", apperrors.ErrValidation)
	}

	return nil
}

func (s *rideService) AssignDriver(ctx context.Context, rideID, driverID primitive.ObjectID) (*models.Ride, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !models.ValidTransition(ride.Status, models.RideStatusAccepted) {
		return nil, fmt.Errorf("cannot assign a driver to a %s ride: %w", ride.Status, apperrors.ErrValidation)
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("driver not found: %w", apperrors.ErrDriverUnavailable)
	}
	if !driver.IsAvailable || driver.Status != models.DriverStatusActive {
		return nil, fmt.Errorf("driver %s is not available: %w", driver.FullName, apperrors.ErrDriverUnavailable)
	}

	now := time.Now()
	err = s.rideRepo.Update(ctx, rideID, map[string]interface{}{
		"driver_id":   driverID,
		"status":      models.RideStatusAccepted,
		"accepted_at": now,
	})
	if err != nil {
		return nil, err
	}

	ride.DriverID = &driverID
	ride.Status = models.RideStatusAccepted
	ride.AcceptedAt = &now

	return ride, nil
}

func (s *rideService) UpdateStatus(ctx context.Context, rideID primitive.ObjectID, status models.RideStatus, actualPrice *float64) (*models.Ride, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown ride status %q: %w", status, apperrors.ErrValidation)
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !models.ValidTransition(ride.Status, status) {
		return nil, fmt.Errorf("illegal status transition %s -> %s: %w", ride.Status, status, apperrors.ErrValidation)
	}

	now := time.Now()
	updates := map[string]interface{}{"status": status}

	switch status {
	case models.RideStatusAccepted:
		updates["accepted_at"] = now
		ride.AcceptedAt = &now
	case models.RideStatusCompleted:
		updates["completed_at"] = now
		ride.CompletedAt = &now
		if actualPrice != nil {
			updates["actual_price"] = *actualPrice
			ride.ActualPrice = actualPrice
		}
	}

	if err := s.rideRepo.Update(ctx, rideID, updates); err != nil {
		return nil, err
	}
	ride.Status = status

	// The counter increment is a second, non-atomic write: a failure here is
	// logged and the status change stands.
	if status == models.RideStatusCompleted && ride.DriverID != nil {
		if err := s.driverRepo.IncrementTotalRides(ctx, *ride.DriverID); err != nil {
			s.logger.WithError(err).WithField("driver_id", ride.DriverID.Hex()).
				Error("failed to increment driver total rides")
		}
	}

	return ride, nil
}

func (s *rideService) RateRide(ctx context.Context, rideID primitive.ObjectID, rating int, feedback string) (*models.Ride, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrValidation)
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.Status != models.RideStatusCompleted {
		return nil, fmt.Errorf("only completed rides can be rated: %w", apperrors.ErrValidation)
	}

	err = s.rideRepo.Update(ctx, rideID, map[string]interface{}{
		"rating":   rating,
		"feedback": feedback,
	})
	if err != nil {
		return nil, err
	}
	ride.Rating = &rating
	ride.Feedback = feedback

	// Roll the driver's displayed rating forward from ride-embedded ratings.
	// Distinct from the driver_ratings collection aggregation.
	if ride.DriverID != nil {
		avg, count, err := s.rideRepo.AverageDriverRideRating(ctx, *ride.DriverID)
		if err != nil {
			s.logger.WithError(err).WithField("driver_id", ride.DriverID.Hex()).
				Error("failed to aggregate driver ride ratings")
			return ride, nil
		}
		if count > 0 {
			if err := s.driverRepo.UpdateRating(ctx, *ride.DriverID, avg); err != nil {
				s.logger.WithError(err).WithField("driver_id", ride.DriverID.Hex()).
					Error("failed to update driver rating")
			}
		}
	}

	return ride, nil
}

func (s *rideService) FindSharedRides(ctx context.Context, search *SharedRideSearch) ([]*models.Ride, error) {
	if !utils.IsValidCoordinates(search.PickupLat, search.PickupLng) ||
		!utils.IsValidCoordinates(search.DropoffLat, search.DropoffLng) {
		return nil, fmt.Errorf("invalid coordinates: %w", apperrors.ErrValidation)
	}

	window := time.Duration(utils.SharedRideWindowMins) * time.Minute

	rides, err := s.rideRepo.FindShared(ctx, &interfaces.SharedRideQuery{
		WindowStart: search.ScheduledTime.Add(-window),
		WindowEnd:   search.ScheduledTime.Add(window),
		PickupBox:   utils.BoxAround(search.PickupLat, search.PickupLng, utils.SimilarRideRadiusKm),
		DropoffBox:  utils.BoxAround(search.DropoffLat, search.DropoffLng, utils.SimilarRideRadiusKm),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find shared rides: %w", err)
	}

	return rides, nil
}

func (s *rideService) JoinSharedRide(ctx context.Context, rideID primitive.ObjectID, passenger *Passenger) (*models.Ride, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsSharedRide {
		return nil, fmt.Errorf("ride %s is not a shared ride: %w", rideID.Hex(), apperrors.ErrNotFound)
	}
	if len(ride.SharedPassengers) >= ride.MaxSharedPassengers {
		return nil, fmt.Errorf("shared ride is at capacity: %w", apperrors.ErrRideFull)
	}

	// Divisor counts the current passengers plus the original requester plus
	// the new joiner.
	shareAmount := math.Round(ride.EstimatedPrice / float64(len(ride.SharedPassengers)+2))

	ride.SharedPassengers = append(ride.SharedPassengers, models.SharedPassenger{
		StudentID:       passenger.StudentID,
		StudentName:     passenger.StudentName,
		StudentContact:  passenger.StudentContact,
		PickupLocation:  passenger.PickupLocation,
		DropoffLocation: passenger.DropoffLocation,
		ShareAmount:     shareAmount,
	})

	err = s.rideRepo.Update(ctx, rideID, map[string]interface{}{
		"shared_passengers": ride.SharedPassengers,
	})
	if err != nil {
		return nil, err
	}

	return ride, nil
}

func (s *rideService) JoinSplitFare(ctx context.Context, rideID primitive.ObjectID, participant *Passenger) (*models.Ride, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.SplitFare == nil || !ride.SplitFare.Enabled || !ride.SplitFare.IsOpen {
		return nil, fmt.Errorf("split fare is not open on ride %s: %w", rideID.Hex(), apperrors.ErrNotFound)
	}
	if len(ride.SplitFare.Participants) >= ride.SplitFare.TotalParticipants {
		return nil, fmt.Errorf("split fare is at capacity: %w", apperrors.ErrRideFull)
	}
	for _, p := range ride.SplitFare.Participants {
		if p.StudentID == participant.StudentID {
			return nil, fmt.Errorf("student %s already joined this split fare: %w", participant.StudentID, apperrors.ErrAlreadyJoined)
		}
	}

	// Divides by the declared participant total, not the current count.
	shareAmount := math.Round(ride.EstimatedPrice / float64(ride.SplitFare.TotalParticipants))

	ride.SplitFare.Participants = append(ride.SplitFare.Participants, models.SplitFareParticipant{
		StudentID:      participant.StudentID,
		StudentName:    participant.StudentName,
		StudentContact: participant.StudentContact,
		ShareAmount:    shareAmount,
	})

	if len(ride.SplitFare.Participants) >= ride.SplitFare.TotalParticipants {
		ride.SplitFare.IsOpen = false
	}

	err = s.rideRepo.Update(ctx, rideID, map[string]interface{}{
		"split_fare": ride.SplitFare,
	})
	if err != nil {
		return nil, err
	}

	return ride, nil
}

func (s *rideService) GetRide(ctx context.Context, rideID primitive.ObjectID) (*models.Ride, error) {
	return s.rideRepo.GetByID(ctx, rideID)
}

func (s *rideService) ListRides(ctx context.Context, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return s.rideRepo.List(ctx, params)
}

func (s *rideService) GetStudentRides(ctx context.Context, studentID string, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return s.rideRepo.GetByStudent(ctx, studentID, params)
}
