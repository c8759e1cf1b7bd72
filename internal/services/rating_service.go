package services

import (
	"context"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingSummary pairs a room's rating list with the recomputed aggregate.
type RatingSummary struct {
	Ratings       []*models.Rating `json:"ratings"`
	AverageRating float64          `json:"average_rating"`
	RatingCount   int64            `json:"rating_count"`
}

type RatingService interface {
	// SubmitRating upserts the caller's rating for a room and reports whether
	// it was newly created (as opposed to overwriting a previous one).
	SubmitRating(ctx context.Context, rating *models.Rating) (created bool, err error)
	GetUserRating(ctx context.Context, roomID primitive.ObjectID, userID string) (*models.Rating, error)
	GetRoomRatings(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) (*RatingSummary, int64, error)
	DeleteRating(ctx context.Context, roomID primitive.ObjectID, userID string) error
}

type ratingService struct {
	ratingRepo interfaces.RatingRepository
	roomRepo   interfaces.RoomRepository
}

func NewRatingService(ratingRepo interfaces.RatingRepository, roomRepo interfaces.RoomRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		roomRepo:   roomRepo,
	}
}

func (s *ratingService) SubmitRating(ctx context.Context, rating *models.Rating) (bool, error) {
	if rating.Rating < 1 || rating.Rating > 5 {
		return false, fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrValidation)
	}
	if len(rating.Review) > utils.MaxReviewLength {
		return false, fmt.Errorf("review exceeds %d characters: %w", utils.MaxReviewLength, apperrors.ErrValidation)
	}

	// A rating against a deleted room must not resurrect it.
	if _, err := s.roomRepo.GetByID(ctx, rating.RoomID); err != nil {
		return false, err
	}

	return s.ratingRepo.Upsert(ctx, rating)
}

func (s *ratingService) GetUserRating(ctx context.Context, roomID primitive.ObjectID, userID string) (*models.Rating, error) {
	return s.ratingRepo.GetByRoomAndUser(ctx, roomID, userID)
}

func (s *ratingService) GetRoomRatings(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) (*RatingSummary, int64, error) {
	ratings, total, err := s.ratingRepo.GetByRoom(ctx, roomID, params)
	if err != nil {
		return nil, 0, err
	}

	avg, count, err := s.ratingRepo.GetAverage(ctx, roomID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate room rating: %w", err)
	}

	return &RatingSummary{
		Ratings:       ratings,
		AverageRating: avg,
		RatingCount:   count,
	}, total, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, roomID primitive.ObjectID, userID string) error {
	return s.ratingRepo.Delete(ctx, roomID, userID)
}
