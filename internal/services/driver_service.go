package services

import (
	"context"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverService interface {
	CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id primitive.ObjectID) error
	ListDrivers(ctx context.Context, params *utils.PaginationParams) ([]*models.Driver, int64, error)
	GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error)
	SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error
}

type driverService struct {
	driverRepo interfaces.DriverRepository
}

func NewDriverService(driverRepo interfaces.DriverRepository) DriverService {
	return &driverService{driverRepo: driverRepo}
}

func (s *driverService) CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	if driver.FullName == "" || driver.ContactNumber == "" || driver.Email == "" {
		return nil, fmt.Errorf("driver name, contact and email are required: %w", apperrors.ErrValidation)
	}
	if driver.PricePerKm < 0 {
		return nil, fmt.Errorf("price per km cannot be negative: %w", apperrors.ErrValidation)
	}

	// New drivers start at the default rating and rate until set otherwise.
	if driver.Rating == 0 {
		driver.Rating = models.DefaultDriverRating
	}
	if driver.PricePerKm == 0 {
		driver.PricePerKm = models.DefaultPricePerKm
	}
	if driver.Status == "" {
		driver.Status = models.DriverStatusActive
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

func (s *driverService) GetDriver(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *driverService) UpdateDriver(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	// The displayed rating is owned by the rating aggregator.
	delete(updates, "rating")
	delete(updates, "total_rides")

	if err := s.driverRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.driverRepo.GetByID(ctx, id)
}

func (s *driverService) DeleteDriver(ctx context.Context, id primitive.ObjectID) error {
	return s.driverRepo.Delete(ctx, id)
}

func (s *driverService) ListDrivers(ctx context.Context, params *utils.PaginationParams) ([]*models.Driver, int64, error) {
	return s.driverRepo.List(ctx, params)
}

func (s *driverService) GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error) {
	return s.driverRepo.GetAvailableActive(ctx)
}

func (s *driverService) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	return s.driverRepo.Update(ctx, id, map[string]interface{}{"is_available": available})
}
