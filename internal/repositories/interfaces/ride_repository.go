package interfaces

import (
	"context"
	"time"

	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SimilarRideQuery matches rides with status pending or accepted whose
// scheduled time falls inside the day window and whose dropoff lies inside
// the bounding box.
type SimilarRideQuery struct {
	DayStart   time.Time
	DayEnd     time.Time
	DropoffBox utils.BoundingBox
}

// SharedRideQuery matches open shared pending rides in a ±30 minute window
// whose pickup AND dropoff both fall inside their respective boxes.
type SharedRideQuery struct {
	WindowStart time.Time
	WindowEnd   time.Time
	PickupBox   utils.BoundingBox
	DropoffBox  utils.BoundingBox
}

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	GetByStudent(ctx context.Context, studentID string, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	GetByStatus(ctx context.Context, status models.RideStatus, params *utils.PaginationParams) ([]*models.Ride, int64, error)

	FindSimilar(ctx context.Context, query *SimilarRideQuery) ([]*models.Ride, error)
	FindShared(ctx context.Context, query *SharedRideQuery) ([]*models.Ride, error)

	// AverageDriverRideRating is the mean of the ride-embedded post-completion
	// ratings for a driver, with the count of rated rides.
	AverageDriverRideRating(ctx context.Context, driverID primitive.ObjectID) (float64, int64, error)

	CountByStatus(ctx context.Context) (map[models.RideStatus]int64, error)
}
