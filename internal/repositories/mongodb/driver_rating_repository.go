package mongodb

import (
	"context"
	"fmt"
	"math"
	"time"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type driverRatingRepository struct {
	collection *mongo.Collection
	cache      interfaces.CacheService
}

func NewDriverRatingRepository(db *mongo.Database, cache interfaces.CacheService) interfaces.DriverRatingRepository {
	return &driverRatingRepository{
		collection: db.Collection("driver_ratings"),
		cache:      cache,
	}
}

func (r *driverRatingRepository) Upsert(ctx context.Context, rating *models.DriverRating) (bool, error) {
	now := time.Now()
	filter := bson.M{"driver_id": rating.DriverID, "user_id": rating.UserID}
	update := bson.M{
		"$set": bson.M{
			"rating":     rating.Rating,
			"review":     rating.Review,
			"user_name":  rating.UserName,
			"user_image": rating.UserImage,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"driver_id":  rating.DriverID,
			"user_id":    rating.UserID,
			"created_at": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, fmt.Errorf("duplicate rating submission: %w", apperrors.ErrConflict)
		}
		return false, fmt.Errorf("failed to upsert driver rating: %w", err)
	}

	r.invalidateAverageCache(ctx, rating.DriverID)

	return result.UpsertedCount > 0, nil
}

func (r *driverRatingRepository) GetByDriverAndUser(ctx context.Context, driverID primitive.ObjectID, userID string) (*models.DriverRating, error) {
	var rating models.DriverRating
	err := r.collection.FindOne(ctx, bson.M{"driver_id": driverID, "user_id": userID}).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("rating for driver %s: %w", driverID.Hex(), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver rating: %w", err)
	}

	return &rating, nil
}

func (r *driverRatingRepository) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.DriverRating, int64, error) {
	filter := bson.M{"driver_id": driverID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count driver ratings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find driver ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []*models.DriverRating
	for cursor.Next(ctx) {
		var rating models.DriverRating
		if err := cursor.Decode(&rating); err != nil {
			return nil, 0, fmt.Errorf("failed to decode driver rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, total, nil
}

func (r *driverRatingRepository) Delete(ctx context.Context, driverID primitive.ObjectID, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"driver_id": driverID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete driver rating: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("rating for driver %s: %w", driverID.Hex(), apperrors.ErrNotFound)
	}

	r.invalidateAverageCache(ctx, driverID)

	return nil
}

func (r *driverRatingRepository) GetAverage(ctx context.Context, driverID primitive.ObjectID) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"driver_id": driverID}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"avg_rating": bson.M{"$avg": "$rating"},
			"count":      bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to calculate driver average rating: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AvgRating float64 `bson:"avg_rating"`
		Count     int64   `bson:"count"`
	}

	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode driver average rating: %w", err)
		}
	}

	return math.Round(result.AvgRating*100) / 100, result.Count, nil
}

func (r *driverRatingRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count driver ratings: %w", err)
	}
	return count, nil
}

func (r *driverRatingRepository) invalidateAverageCache(ctx context.Context, driverID primitive.ObjectID) {
	if r.cache != nil {
		r.cache.Delete(ctx, fmt.Sprintf("driver_avg_rating_%s", driverID.Hex()))
	}
}
