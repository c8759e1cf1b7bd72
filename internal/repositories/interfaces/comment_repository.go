package interfaces

import (
	"context"

	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	GetByRoom(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Comment, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
