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

type roomRepository struct {
	collection *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) interfaces.RoomRepository {
	return &roomRepository{
		collection: db.Collection("rooms"),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	room.ID = primitive.NewObjectID()
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	var room models.Room
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("room %s: %w", id.Hex(), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (r *roomRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("room %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("room %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *roomRepository) List(ctx context.Context, filter *interfaces.RoomFilter, params *utils.PaginationParams) ([]*models.Room, int64, error) {
	query := buildRoomQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, 0, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, total, nil
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

func buildRoomQuery(filter *interfaces.RoomFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Location != "" {
		query["location"] = bson.M{"$regex": filter.Location, "$options": "i"}
	}

	priceRange := bson.M{}
	if filter.MinPrice > 0 {
		priceRange["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		priceRange["$lte"] = filter.MaxPrice
	}
	if len(priceRange) > 0 {
		query["price"] = priceRange
	}

	if filter.MaxMinutes > 0 {
		query["minutes_away"] = bson.M{"$lte": filter.MaxMinutes}
	}
	if filter.BestOnly {
		query["best_room"] = true
	}

	if filter.WiFi {
		query["amenities.wifi"] = true
	}
	if filter.Shower {
		query["amenities.shower"] = true
	}
	if filter.Bathtub {
		query["amenities.bathtub"] = true
	}
	if filter.Table {
		query["amenities.table"] = true
	}
	if filter.Bed {
		query["amenities.bed"] = true
	}
	if filter.Electricity {
		query["amenities.electricity"] = true
	}

	return query
}
