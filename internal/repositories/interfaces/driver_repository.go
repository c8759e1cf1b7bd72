package interfaces

import (
	"context"

	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Driver, int64, error)

	// GetAvailableActive returns drivers with is_available=true and
	// status=active; their mean price_per_km feeds quote estimation.
	GetAvailableActive(ctx context.Context) ([]*models.Driver, error)

	UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64) error
	IncrementTotalRides(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
