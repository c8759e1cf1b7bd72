package services

import (
	"context"

	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
)

// PlatformStats is the admin dashboard snapshot. Counts are read directly
// from each collection so they never drift from the data.
type PlatformStats struct {
	TotalRooms           int64                       `json:"total_rooms"`
	TotalDrivers         int64                       `json:"total_drivers"`
	TotalRoomRatings     int64                       `json:"total_room_ratings"`
	TotalDriverRatings   int64                       `json:"total_driver_ratings"`
	TotalFeedback        int64                       `json:"total_feedback"`
	AverageWebsiteRating float64                     `json:"average_website_rating"`
	RidesByStatus        map[models.RideStatus]int64 `json:"rides_by_status"`
}

type StatsService interface {
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}

type statsService struct {
	roomRepo         interfaces.RoomRepository
	driverRepo       interfaces.DriverRepository
	rideRepo         interfaces.RideRepository
	ratingRepo       interfaces.RatingRepository
	driverRatingRepo interfaces.DriverRatingRepository
	feedbackRepo     interfaces.FeedbackRepository
}

func NewStatsService(
	roomRepo interfaces.RoomRepository,
	driverRepo interfaces.DriverRepository,
	rideRepo interfaces.RideRepository,
	ratingRepo interfaces.RatingRepository,
	driverRatingRepo interfaces.DriverRatingRepository,
	feedbackRepo interfaces.FeedbackRepository,
) StatsService {
	return &statsService{
		roomRepo:         roomRepo,
		driverRepo:       driverRepo,
		rideRepo:         rideRepo,
		ratingRepo:       ratingRepo,
		driverRatingRepo: driverRatingRepo,
		feedbackRepo:     feedbackRepo,
	}
}

func (s *statsService) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	var err error
	if stats.TotalRooms, err = s.roomRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDrivers, err = s.driverRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRoomRatings, err = s.ratingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDriverRatings, err = s.driverRatingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalFeedback, err = s.feedbackRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.AverageWebsiteRating, err = s.feedbackRepo.AverageWebsiteRating(ctx); err != nil {
		return nil, err
	}
	if stats.RidesByStatus, err = s.rideRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
