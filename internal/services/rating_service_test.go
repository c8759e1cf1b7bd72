package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubmitRatingValidation(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	roomRepo := newFakeRoomRepo()
	svc := NewRatingService(ratingRepo, roomRepo)

	roomID := roomRepo.put(&models.Room{Title: "Single near campus", Price: 900})

	tests := []struct {
		name   string
		rating *models.Rating
	}{
		{"too low", &models.Rating{RoomID: roomID, UserID: "u1", Rating: 0}},
		{"too high", &models.Rating{RoomID: roomID, UserID: "u1", Rating: 6}},
		{"review too long", &models.Rating{RoomID: roomID, UserID: "u1", Rating: 4, Review: strings.Repeat("a", utils.MaxReviewLength+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SubmitRating(context.Background(), tt.rating); !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSubmitRatingMissingRoom(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), newFakeRoomRepo())

	_, err := svc.SubmitRating(context.Background(), &models.Rating{
		RoomID: primitive.NewObjectID(), UserID: "u1", Rating: 4,
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSubmitRatingUpsert(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	roomRepo := newFakeRoomRepo()
	svc := NewRatingService(ratingRepo, roomRepo)

	roomID := roomRepo.put(&models.Room{Title: "Shared twin", Price: 600})

	created, err := svc.SubmitRating(context.Background(), &models.Rating{RoomID: roomID, UserID: "u1", Rating: 5})
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if !created {
		t.Error("first submission must report created")
	}

	created, err = svc.SubmitRating(context.Background(), &models.Rating{RoomID: roomID, UserID: "u1", Rating: 2})
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if created {
		t.Error("resubmission must overwrite, not create")
	}
	if n, _ := ratingRepo.Count(context.Background()); n != 1 {
		t.Errorf("stored ratings = %d, want 1", n)
	}
}

func TestGetRoomRatingsAggregates(t *testing.T) {
	ratingRepo := newFakeRatingRepo()
	roomRepo := newFakeRoomRepo()
	svc := NewRatingService(ratingRepo, roomRepo)

	roomID := roomRepo.put(&models.Room{Title: "Bedsitter", Price: 500})
	for i, r := range []int{5, 4, 3} {
		if _, err := ratingRepo.Upsert(context.Background(), &models.Rating{
			RoomID: roomID, UserID: string(rune('a' + i)), Rating: r,
		}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	summary, total, err := svc.GetRoomRatings(context.Background(), roomID, &utils.PaginationParams{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("GetRoomRatings: %v", err)
	}
	if total != 3 || summary.RatingCount != 3 {
		t.Errorf("count = %d/%d, want 3", total, summary.RatingCount)
	}
	if summary.AverageRating != 4 {
		t.Errorf("average = %v, want 4", summary.AverageRating)
	}
}

func TestDeleteRatingNotFound(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), newFakeRoomRepo())

	err := svc.DeleteRating(context.Background(), primitive.NewObjectID(), "u1")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
