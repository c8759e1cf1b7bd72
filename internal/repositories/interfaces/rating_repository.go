package interfaces

import (
	"context"

	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingRepository stores room ratings, one per (room_id, user_id).
type RatingRepository interface {
	// Upsert inserts or overwrites the rating for (roomID, userID) and
	// reports whether a new document was created.
	Upsert(ctx context.Context, rating *models.Rating) (created bool, err error)
	GetByRoomAndUser(ctx context.Context, roomID primitive.ObjectID, userID string) (*models.Rating, error)
	GetByRoom(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Rating, int64, error)
	Delete(ctx context.Context, roomID primitive.ObjectID, userID string) error
	GetAverage(ctx context.Context, roomID primitive.ObjectID) (avg float64, count int64, err error)
	Count(ctx context.Context) (int64, error)
}

// DriverRatingRepository mirrors RatingRepository keyed by driver.
type DriverRatingRepository interface {
	Upsert(ctx context.Context, rating *models.DriverRating) (created bool, err error)
	GetByDriverAndUser(ctx context.Context, driverID primitive.ObjectID, userID string) (*models.DriverRating, error)
	GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.DriverRating, int64, error)
	Delete(ctx context.Context, driverID primitive.ObjectID, userID string) error
	GetAverage(ctx context.Context, driverID primitive.ObjectID) (avg float64, count int64, err error)
	Count(ctx context.Context) (int64, error)
}
