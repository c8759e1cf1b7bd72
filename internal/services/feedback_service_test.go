package services

import (
	"context"
	"errors"
	"testing"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/utils"
)

func TestSubmitFeedbackOncePerUser(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo)

	first := &models.Feedback{UserID: "u1", UserName: "Mary", WebsiteRating: 5, IsPublic: true}
	if _, err := svc.SubmitFeedback(context.Background(), first); err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if !first.IsApproved {
		t.Error("new feedback must start approved")
	}

	_, err := svc.SubmitFeedback(context.Background(), &models.Feedback{UserID: "u1", WebsiteRating: 3})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	for _, rating := range []int{0, 6} {
		_, err := svc.SubmitFeedback(context.Background(), &models.Feedback{UserID: "u1", WebsiteRating: rating})
		if !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("rating %d: error = %v, want ErrValidation", rating, err)
		}
	}
}

func TestFeedbackPublishesImmediately(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo)

	fb := &models.Feedback{UserID: "u1", WebsiteRating: 4, IsPublic: true}
	if _, err := svc.SubmitFeedback(context.Background(), fb); err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}

	params := &utils.PaginationParams{Page: 1, PageSize: 20}
	public, _, err := svc.ListPublicFeedback(context.Background(), params)
	if err != nil {
		t.Fatalf("ListPublicFeedback: %v", err)
	}
	if len(public) != 1 {
		t.Errorf("fresh public feedback missing from public list: %d entries, want 1", len(public))
	}

	// Admins can retract a published entry.
	if err := svc.ApproveFeedback(context.Background(), fb.ID, false); err != nil {
		t.Fatalf("ApproveFeedback: %v", err)
	}

	public, _, err = svc.ListPublicFeedback(context.Background(), params)
	if err != nil {
		t.Fatalf("ListPublicFeedback: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("retracted feedback still public: %d entries, want 0", len(public))
	}
}
