package interfaces

import (
	"context"

	"unistay/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedRoomRepository interface {
	Create(ctx context.Context, saved *models.SavedRoom) error
	Delete(ctx context.Context, userID string, roomID primitive.ObjectID) error
	// GetByUser joins the room document into each bookmark at read time.
	GetByUser(ctx context.Context, userID string) ([]*models.SavedRoomWithRoom, error)
	Exists(ctx context.Context, userID string, roomID primitive.ObjectID) (bool, error)
}
