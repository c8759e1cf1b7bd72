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

type faqRepository struct {
	collection *mongo.Collection
}

func NewFAQRepository(db *mongo.Database) interfaces.FAQRepository {
	return &faqRepository{
		collection: db.Collection("faqs"),
	}
}

func (r *faqRepository) Create(ctx context.Context, faq *models.FAQ) error {
	faq.ID = primitive.NewObjectID()
	faq.CreatedAt = time.Now()
	faq.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, faq)
	if err != nil {
		return fmt.Errorf("failed to create FAQ: %w", err)
	}

	return nil
}

func (r *faqRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&faq)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("FAQ %s: %w", id.Hex(), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get FAQ: %w", err)
	}

	return &faq, nil
}

func (r *faqRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update FAQ: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("FAQ %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete FAQ: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("FAQ %s: %w", id.Hex(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *faqRepository) List(ctx context.Context) ([]*models.FAQ, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find FAQs: %w", err)
	}
	defer cursor.Close(ctx)

	var faqs []*models.FAQ
	for cursor.Next(ctx) {
		var faq models.FAQ
		if err := cursor.Decode(&faq); err != nil {
			return nil, fmt.Errorf("failed to decode FAQ: %w", err)
		}
		faqs = append(faqs, &faq)
	}

	return faqs, nil
}
