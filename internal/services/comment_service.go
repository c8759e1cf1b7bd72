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

type CommentService interface {
	AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetRoomComments(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Comment, int64, error)
	// DeleteComment removes a comment if the caller authored it.
	DeleteComment(ctx context.Context, commentID primitive.ObjectID, userID string) error
}

type commentService struct {
	commentRepo interfaces.CommentRepository
	roomRepo    interfaces.RoomRepository
}

func NewCommentService(commentRepo interfaces.CommentRepository, roomRepo interfaces.RoomRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		roomRepo:    roomRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.Content == "" {
		return nil, fmt.Errorf("comment content is required: %w", apperrors.ErrValidation)
	}
	if len(comment.Content) > utils.MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds %d characters: %w", utils.MaxCommentLength, apperrors.ErrValidation)
	}

	if _, err := s.roomRepo.GetByID(ctx, comment.RoomID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetRoomComments(ctx context.Context, roomID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Comment, int64, error) {
	return s.commentRepo.GetByRoom(ctx, roomID, params)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID primitive.ObjectID, userID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return fmt.Errorf("comment belongs to another user: %w", apperrors.ErrValidation)
	}

	return s.commentRepo.Delete(ctx, commentID)
}
