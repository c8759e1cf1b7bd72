package services

import (
	"context"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"
	"unistay/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRatingService interface {
	SubmitRating(ctx context.Context, rating *models.DriverRating) (created bool, err error)
	GetUserRating(ctx context.Context, driverID primitive.ObjectID, userID string) (*models.DriverRating, error)
	GetDriverRatings(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.DriverRating, int64, error)
	DeleteRating(ctx context.Context, driverID primitive.ObjectID, userID string) error
}

type driverRatingService struct {
	ratingRepo interfaces.DriverRatingRepository
	driverRepo interfaces.DriverRepository
	logger     *logger.Logger
}

func NewDriverRatingService(
	ratingRepo interfaces.DriverRatingRepository,
	driverRepo interfaces.DriverRepository,
	log *logger.Logger,
) DriverRatingService {
	return &driverRatingService{
		ratingRepo: ratingRepo,
		driverRepo: driverRepo,
		logger:     log,
	}
}

func (s *driverRatingService) SubmitRating(ctx context.Context, rating *models.DriverRating) (bool, error) {
	if rating.Rating < 1 || rating.Rating > 5 {
		return false, fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrValidation)
	}
	if len(rating.Review) > utils.MaxReviewLength {
		return false, fmt.Errorf("review exceeds %d characters: %w", utils.MaxReviewLength, apperrors.ErrValidation)
	}

	if _, err := s.driverRepo.GetByID(ctx, rating.DriverID); err != nil {
		return false, err
	}

	created, err := s.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		return false, err
	}

	s.syncDriverRating(ctx, rating.DriverID)
	return created, nil
}

func (s *driverRatingService) DeleteRating(ctx context.Context, driverID primitive.ObjectID, userID string) error {
	if err := s.ratingRepo.Delete(ctx, driverID, userID); err != nil {
		return err
	}

	s.syncDriverRating(ctx, driverID)
	return nil
}

// syncDriverRating writes the recomputed average back onto the driver
// document, resetting to the default when no ratings remain. The rating change
// itself already succeeded, so a write-back failure is only logged.
func (s *driverRatingService) syncDriverRating(ctx context.Context, driverID primitive.ObjectID) {
	avg, count, err := s.ratingRepo.GetAverage(ctx, driverID)
	if err != nil {
		s.logger.WithError(err).WithField("driver_id", driverID.Hex()).
			Error("failed to aggregate driver ratings")
		return
	}

	if count == 0 {
		avg = models.DefaultDriverRating
	}

	if err := s.driverRepo.UpdateRating(ctx, driverID, avg); err != nil {
		s.logger.WithError(err).WithField("driver_id", driverID.Hex()).
			Error("failed to write back driver rating")
	}
}

func (s *driverRatingService) GetUserRating(ctx context.Context, driverID primitive.ObjectID, userID string) (*models.DriverRating, error) {
	return s.ratingRepo.GetByDriverAndUser(ctx, driverID, userID)
}

func (s *driverRatingService) GetDriverRatings(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.DriverRating, int64, error) {
	return s.ratingRepo.GetByDriver(ctx, driverID, params)
}
