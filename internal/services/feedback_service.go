package services

import (
	"context"
	"errors"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackService interface {
	// SubmitFeedback stores one website review per user; a second submission
	// fails with a conflict.
	SubmitFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error)
	GetUserFeedback(ctx context.Context, userID string) (*models.Feedback, error)
	// ListPublicFeedback returns approved, public testimonials.
	ListPublicFeedback(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error)
	ListAllFeedback(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error)
	ApproveFeedback(ctx context.Context, id primitive.ObjectID, approved bool) error
	DeleteFeedback(ctx context.Context, id primitive.ObjectID) error
}

type feedbackService struct {
	feedbackRepo interfaces.FeedbackRepository
}

func NewFeedbackService(feedbackRepo interfaces.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	if feedback.WebsiteRating < 1 || feedback.WebsiteRating > 5 {
		return nil, fmt.Errorf("website rating must be between 1 and 5: %w", apperrors.ErrValidation)
	}
	if len(feedback.Review) > utils.MaxReviewLength {
		return nil, fmt.Errorf("review exceeds %d characters: %w", utils.MaxReviewLength, apperrors.ErrValidation)
	}

	existing, err := s.feedbackRepo.GetByUser(ctx, feedback.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user %s already submitted feedback: %w", feedback.UserID, apperrors.ErrConflict)
	}

	// Feedback publishes immediately; admins can retract it later.
	feedback.IsApproved = true

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) GetUserFeedback(ctx context.Context, userID string) (*models.Feedback, error) {
	return s.feedbackRepo.GetByUser(ctx, userID)
}

func (s *feedbackService) ListPublicFeedback(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	return s.feedbackRepo.ListPublic(ctx, params)
}

func (s *feedbackService) ListAllFeedback(ctx context.Context, params *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	return s.feedbackRepo.List(ctx, params)
}

func (s *feedbackService) ApproveFeedback(ctx context.Context, id primitive.ObjectID, approved bool) error {
	return s.feedbackRepo.Update(ctx, id, map[string]interface{}{"is_approved": approved})
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id primitive.ObjectID) error {
	return s.feedbackRepo.Delete(ctx, id)
}
