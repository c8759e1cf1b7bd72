package interfaces

import (
	"context"

	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByUser(ctx context.Context, userID string) (*models.Feedback, error)
	ListPublic(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	AverageWebsiteRating(ctx context.Context) (float64, error)
}
