package mongodb

import (
	"context"
	"fmt"
	"time"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type savedRoomRepository struct {
	collection *mongo.Collection
}

func NewSavedRoomRepository(db *mongo.Database) interfaces.SavedRoomRepository {
	return &savedRoomRepository{
		collection: db.Collection("saved_rooms"),
	}
}

func (r *savedRoomRepository) Create(ctx context.Context, saved *models.SavedRoom) error {
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, saved)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("room already saved: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

func (r *savedRoomRepository) Delete(ctx context.Context, userID string, roomID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "room_id": roomID})
	if err != nil {
		return fmt.Errorf("failed to unsave room: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("saved room %s: %w", roomID.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *savedRoomRepository) GetByUser(ctx context.Context, userID string) ([]*models.SavedRoomWithRoom, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "rooms",
			"localField":   "room_id",
			"foreignField": "_id",
			"as":           "room",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$room",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to find saved rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var saved []*models.SavedRoomWithRoom
	for cursor.Next(ctx) {
		var item models.SavedRoomWithRoom
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode saved room: %w", err)
		}
		saved = append(saved, &item)
	}

	return saved, nil
}

func (r *savedRoomRepository) Exists(ctx context.Context, userID string, roomID primitive.ObjectID) (bool, error) {
	err := r.collection.FindOne(
		ctx,
		bson.M{"user_id": userID, "room_id": roomID},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("failed to check saved room: %w", err)
	}

	return true, nil
}
