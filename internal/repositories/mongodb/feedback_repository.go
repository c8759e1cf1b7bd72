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
)

type feedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) interfaces.FeedbackRepository {
	return &feedbackRepository{
		collection: db.Collection("feedback"),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = primitive.NewObjectID()
	feedback.CreatedAt = time.Now()
	feedback.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("feedback already submitted for this user: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) GetByUser(ctx context.Context, userID string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("feedback for user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return &feedback, nil
}

func (r *feedbackRepository) ListPublic(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	return r.findFeedbackWithFilter(ctx, bson.M{"is_approved": true, "is_public": true}, params)
}

func (r *feedbackRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	return r.findFeedbackWithFilter(ctx, bson.M{}, params)
}

func (r *feedbackRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("feedback %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("feedback %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *feedbackRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

func (r *feedbackRepository) AverageWebsiteRating(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"avg_rating": bson.M{"$avg": "$website_rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate average website rating: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AvgRating float64 `bson:"avg_rating"`
	}

	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode average website rating: %w", err)
		}
	}

	return math.Round(result.AvgRating*100) / 100, nil
}

func (r *feedbackRepository) findFeedbackWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbackList []*models.Feedback
	for cursor.Next(ctx) {
		var feedback models.Feedback
		if err := cursor.Decode(&feedback); err != nil {
			return nil, 0, fmt.Errorf("failed to decode feedback: %w", err)
		}
		feedbackList = append(feedbackList, &feedback)
	}

	return feedbackList, total, nil
}
