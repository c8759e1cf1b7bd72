package services

import (
	"context"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedRoomService interface {
	SaveRoom(ctx context.Context, userID string, roomID primitive.ObjectID) error
	UnsaveRoom(ctx context.Context, userID string, roomID primitive.ObjectID) error
	GetSavedRooms(ctx context.Context, userID string) ([]*models.SavedRoomWithRoom, error)
	IsSaved(ctx context.Context, userID string, roomID primitive.ObjectID) (bool, error)
}

type savedRoomService struct {
	savedRoomRepo interfaces.SavedRoomRepository
	roomRepo      interfaces.RoomRepository
}

func NewSavedRoomService(savedRoomRepo interfaces.SavedRoomRepository, roomRepo interfaces.RoomRepository) SavedRoomService {
	return &savedRoomService{
		savedRoomRepo: savedRoomRepo,
		roomRepo:      roomRepo,
	}
}

func (s *savedRoomService) SaveRoom(ctx context.Context, userID string, roomID primitive.ObjectID) error {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return err
	}

	saved, err := s.savedRoomRepo.Exists(ctx, userID, roomID)
	if err != nil {
		return err
	}
	if saved {
		return fmt.Errorf("room already saved: %w", apperrors.ErrConflict)
	}

	return s.savedRoomRepo.Create(ctx, &models.SavedRoom{
		UserID: userID,
		RoomID: roomID,
	})
}

func (s *savedRoomService) UnsaveRoom(ctx context.Context, userID string, roomID primitive.ObjectID) error {
	return s.savedRoomRepo.Delete(ctx, userID, roomID)
}

func (s *savedRoomService) GetSavedRooms(ctx context.Context, userID string) ([]*models.SavedRoomWithRoom, error) {
	return s.savedRoomRepo.GetByUser(ctx, userID)
}

func (s *savedRoomService) IsSaved(ctx context.Context, userID string, roomID primitive.ObjectID) (bool, error) {
	return s.savedRoomRepo.Exists(ctx, userID, roomID)
}
