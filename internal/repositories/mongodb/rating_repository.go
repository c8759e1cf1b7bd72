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

type ratingRepository struct {
	collection *mongo.Collection
	cache      interfaces.CacheService
}

func NewRatingRepository(db *mongo.Database, cache interfaces.CacheService) interfaces.RatingRepository {
	return &ratingRepository{
		collection: db.Collection("ratings"),
		cache:      cache,
	}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) (bool, error) {
	now := time.Now()
	filter := bson.M{"room_id": rating.RoomID, "user_id": rating.UserID}
	update := bson.M{
		"$set": bson.M{
			"rating":     rating.Rating,
			"review":     rating.Review,
			"user_name":  rating.UserName,
			"user_image": rating.UserImage,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"room_id":    rating.RoomID,
			"user_id":    rating.UserID,
			"created_at": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race against a concurrent upsert for the same pair; the
			// unique index is the safety net.
			return false, fmt.Errorf("duplicate rating submission: %w", apperrors.ErrConflict)
		}
		return false, fmt.Errorf("failed to upsert rating: %w", err)
	}

	r.invalidateAverageCache(ctx, rating.RoomID)

	return result.UpsertedCount > 0, nil
}

func (r *ratingRepository) GetByRoomAndUser(ctx context.Context, roomID primitive.ObjectID, userID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.collection.FindOne(ctx, bson.M{"room_id": roomID, "user_id": userID}).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("rating for room %s: %w", roomID.Hex(), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &rating, nil
}

func (r *ratingRepository) GetByRoom(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Rating, int64, error) {
	filter := bson.M{"room_id": roomID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count ratings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []*models.Rating
	for cursor.Next(ctx) {
		var rating models.Rating
		if err := cursor.Decode(&rating); err != nil {
			return nil, 0, fmt.Errorf("failed to decode rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, total, nil
}

func (r *ratingRepository) Delete(ctx context.Context, roomID primitive.ObjectID, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"room_id": roomID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("rating for room %s: %w", roomID.Hex(), apperrors.ErrNotFound)
	}

	r.invalidateAverageCache(ctx, roomID)

	return nil
}

func (r *ratingRepository) GetAverage(ctx context.Context, roomID primitive.ObjectID) (float64, int64, error) {
	cacheKey := fmt.Sprintf("room_avg_rating_%s", roomID.Hex())
	if r.cache != nil {
		var cached struct {
			Avg   float64 `json:"avg"`
			Count int64   `json:"count"`
		}
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached.Avg, cached.Count, nil
		}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"room_id": roomID}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"avg_rating": bson.M{"$avg": "$rating"},
			"count":      bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to calculate average rating: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AvgRating float64 `bson:"avg_rating"`
		Count     int64   `bson:"count"`
	}

	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode average rating: %w", err)
		}
	}

	avg := math.Round(result.AvgRating*100) / 100

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, map[string]interface{}{
			"avg":   avg,
			"count": result.Count,
		}, 15*time.Minute)
	}

	return avg, result.Count, nil
}

func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}

func (r *ratingRepository) invalidateAverageCache(ctx context.Context, roomID primitive.ObjectID) {
	if r.cache != nil {
		r.cache.Delete(ctx, fmt.Sprintf("room_avg_rating_%s", roomID.Hex()))
	}
}
