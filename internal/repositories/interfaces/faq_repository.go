package interfaces

import (
	"context"

	"unistay/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]*models.FAQ, error)
}
