package services

import (
	"context"
	"fmt"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQService interface {
	CreateFAQ(ctx context.Context, faq *models.FAQ) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, id primitive.ObjectID) error
	ListFAQs(ctx context.Context) ([]*models.FAQ, error)
}

type faqService struct {
	faqRepo interfaces.FAQRepository
}

func NewFAQService(faqRepo interfaces.FAQRepository) FAQService {
	return &faqService{faqRepo: faqRepo}
}

func (s *faqService) CreateFAQ(ctx context.Context, faq *models.FAQ) (*models.FAQ, error) {
	if faq.Question == "" || faq.Answer == "" {
		return nil, fmt.Errorf("question and answer are required: %w", apperrors.ErrValidation)
	}

	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.FAQ, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	if err := s.faqRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.faqRepo.GetByID(ctx, id)
}

func (s *faqService) DeleteFAQ(ctx context.Context, id primitive.ObjectID) error {
	return s.faqRepo.Delete(ctx, id)
}

func (s *faqService) ListFAQs(ctx context.Context) ([]*models.FAQ, error) {
	return s.faqRepo.List(ctx)
}
