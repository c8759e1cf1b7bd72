package services

import (
	"context"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"
	"unistay/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	GetRoom(ctx context.Context, id primitive.ObjectID) (*models.RoomWithRating, error)
	UpdateRoom(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(ctx context.Context, id primitive.ObjectID) error
	ListRooms(ctx context.Context, filter *interfaces.RoomFilter, params *utils.PaginationParams) ([]*models.RoomWithRating, int64, error)
}

type roomService struct {
	roomRepo   interfaces.RoomRepository
	ratingRepo interfaces.RatingRepository
	logger     *logger.Logger
}

func NewRoomService(roomRepo interfaces.RoomRepository, ratingRepo interfaces.RatingRepository, log *logger.Logger) RoomService {
	return &roomService{
		roomRepo:   roomRepo,
		ratingRepo: ratingRepo,
		logger:     log,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.logger.WithField("room_id", room.ID.Hex()).Info("Room created")
	return room, nil
}

func validateRoom(room *models.Room) error {
	if room.Title == "" {
		return fmt.Errorf("room title is required: %w", apperrors.ErrValidation)
	}
	if room.Price <= 0 {
		return fmt.Errorf("room price must be positive: %w", apperrors.ErrValidation)
	}
	if room.MinutesAway < 0 {
		return fmt.Errorf("minutes away cannot be negative: %w", apperrors.ErrValidation)
	}
	if room.AvailableRooms < 0 {
		return fmt.Errorf("available rooms cannot be negative: %w", apperrors.ErrValidation)
	}
	return nil
}

func (s *roomService) GetRoom(ctx context.Context, id primitive.ObjectID) (*models.RoomWithRating, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withRating(ctx, room), nil
}

// withRating decorates a room with its live average. An aggregation failure
// degrades to zeros rather than failing the read.
func (s *roomService) withRating(ctx context.Context, room *models.Room) *models.RoomWithRating {
	avg, count, err := s.ratingRepo.GetAverage(ctx, room.ID)
	if err != nil {
		s.logger.WithError(err).WithField("room_id", room.ID.Hex()).
			Warn("failed to aggregate room rating")
		avg, count = 0, 0
	}
	return &models.RoomWithRating{Room: *room, AverageRating: avg, RatingCount: count}
}

func (s *roomService) UpdateRoom(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Room, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}
	if price, ok := updates["price"]; ok {
		if p, ok := price.(int); ok && p <= 0 {
			return nil, fmt.Errorf("room price must be positive: %w", apperrors.ErrValidation)
		}
	}

	if err := s.roomRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	return s.roomRepo.Delete(ctx, id)
}

func (s *roomService) ListRooms(ctx context.Context, filter *interfaces.RoomFilter, params *utils.PaginationParams) ([]*models.RoomWithRating, int64, error) {
	rooms, total, err := s.roomRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*models.RoomWithRating, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, s.withRating(ctx, room))
	}

	return result, total, nil
}
