package interfaces

import (
	"context"

	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomFilter narrows room listings. Zero values mean "no constraint".
type RoomFilter struct {
	Location    string
	MinPrice    int
	MaxPrice    int
	MaxMinutes  int
	BestOnly    bool
	WiFi        bool
	Shower      bool
	Bathtub     bool
	Table       bool
	Bed         bool
	Electricity bool
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter *RoomFilter, params *utils.PaginationParams) ([]*models.Room, int64, error)
	Count(ctx context.Context) (int64, error)
}
