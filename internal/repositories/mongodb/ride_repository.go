package mongodb

import (
	"context"
	"fmt"
	"time"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type rideRepository struct {
	collection *mongo.Collection
}

func NewRideRepository(db *mongo.Database) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection("rides"),
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = time.Now()
	ride.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, ride)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}

	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ride %s: %w", id.Hex(), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return &ride, nil
}

func (r *rideRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("ride %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *rideRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("ride %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *rideRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return r.findRidesWithFilter(ctx, bson.M{}, params)
}

func (r *rideRepository) GetByStudent(ctx context.Context, studentID string, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return r.findRidesWithFilter(ctx, bson.M{"student_id": studentID}, params)
}

func (r *rideRepository) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return r.findRidesWithFilter(ctx, bson.M{"driver_id": driverID}, params)
}

func (r *rideRepository) GetByStatus(ctx context.Context, status models.RideStatus, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return r.findRidesWithFilter(ctx, bson.M{"status": status}, params)
}

// FindSimilar applies the flat-earth bounding box on the dropoff only: two
// independent range conditions per axis, not a circular distance.
func (r *rideRepository) FindSimilar(ctx context.Context, query *interfaces.SimilarRideQuery) ([]*models.Ride, error) {
	filter := bson.M{
		"status": bson.M{"$in": []models.RideStatus{models.RideStatusPending, models.RideStatusAccepted}},
		"scheduled_time": bson.M{
			"$gte": query.DayStart,
			"$lte": query.DayEnd,
		},
		"dropoff_location.lat": bson.M{"$gte": query.DropoffBox.MinLat, "$lte": query.DropoffBox.MaxLat},
		"dropoff_location.lng": bson.M{"$gte": query.DropoffBox.MinLng, "$lte": query.DropoffBox.MaxLng},
	}

	return r.findRides(ctx, filter)
}

// FindShared requires pickup AND dropoff inside their boxes. The capacity
// condition is a real $expr length comparison so full rides never match.
func (r *rideRepository) FindShared(ctx context.Context, query *interfaces.SharedRideQuery) ([]*models.Ride, error) {
	filter := bson.M{
		"is_shared_ride": true,
		"status":         models.RideStatusPending,
		"scheduled_time": bson.M{
			"$gte": query.WindowStart,
			"$lte": query.WindowEnd,
		},
		"pickup_location.lat":  bson.M{"$gte": query.PickupBox.MinLat, "$lte": query.PickupBox.MaxLat},
		"pickup_location.lng":  bson.M{"$gte": query.PickupBox.MinLng, "$lte": query.PickupBox.MaxLng},
		"dropoff_location.lat": bson.M{"$gte": query.DropoffBox.MinLat, "$lte": query.DropoffBox.MaxLat},
		"dropoff_location.lng": bson.M{"$gte": query.DropoffBox.MinLng, "$lte": query.DropoffBox.MaxLng},
		"$expr": bson.M{
			"$lt": bson.A{
				bson.M{"$size": bson.M{"$ifNull": bson.A{"$shared_passengers", bson.A{}}}},
				"$max_shared_passengers",
			},
		},
	}

	return r.findRides(ctx, filter)
}

func (r *rideRepository) AverageDriverRideRating(ctx context.Context, driverID primitive.ObjectID) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"driver_id": driverID,
			"rating":    bson.M{"$ne": nil},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"avg_rating": bson.M{"$avg": "$rating"},
			"count":      bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ride ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AvgRating float64 `bson:"avg_rating"`
		Count     int64   `bson:"count"`
	}

	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode ride rating aggregate: %w", err)
		}
	}

	return result.AvgRating, result.Count, nil
}

func (r *rideRepository) CountByStatus(ctx context.Context) (map[models.RideStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count rides by status: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[models.RideStatus]int64)
	for cursor.Next(ctx) {
		var result struct {
			ID    models.RideStatus `bson:"_id"`
			Count int64             `bson:"count"`
		}
		if err := cursor.Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode ride status count: %w", err)
		}
		counts[result.ID] = result.Count
	}

	return counts, nil
}

func (r *rideRepository) findRides(ctx context.Context, filter bson.M) ([]*models.Ride, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find rides: %w", err)
	}
	defer cursor.Close(ctx)

	var rides []*models.Ride
	for cursor.Next(ctx) {
		var ride models.Ride
		if err := cursor.Decode(&ride); err != nil {
			return nil, fmt.Errorf("failed to decode ride: %w", err)
		}
		rides = append(rides, &ride)
	}

	return rides, nil
}

func (r *rideRepository) findRidesWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find rides: %w", err)
	}
	defer cursor.Close(ctx)

	var rides []*models.Ride
	for cursor.Next(ctx) {
		var ride models.Ride
		if err := cursor.Decode(&ride); err != nil {
			return nil, 0, fmt.Errorf("failed to decode ride: %w", err)
		}
		rides = append(rides, &ride)
	}

	return rides, total, nil
}
