package services

import (
	"context"
	"errors"
	"testing"

	"unistay/internal/apperrors"
	"unistay/internal/models"
)

func TestCreateRoomValidation(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo(), newFakeRatingRepo(), testLogger())

	tests := []struct {
		name string
		room *models.Room
	}{
		{"missing title", &models.Room{Price: 500}},
		{"zero price", &models.Room{Title: "Bedsitter"}},
		{"negative price", &models.Room{Title: "Bedsitter", Price: -100}},
		{"negative minutes", &models.Room{Title: "Bedsitter", Price: 500, MinutesAway: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateRoom(context.Background(), tt.room); !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGetRoomComputesAverageOnRead(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	ratingRepo := newFakeRatingRepo()
	svc := NewRoomService(roomRepo, ratingRepo, testLogger())

	roomID := roomRepo.put(&models.Room{Title: "Single near campus", Price: 900})

	room, err := svc.GetRoom(context.Background(), roomID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if room.AverageRating != 0 || room.RatingCount != 0 {
		t.Errorf("unrated room aggregate = %v/%v, want zeros", room.AverageRating, room.RatingCount)
	}

	for i, r := range []int{5, 2} {
		if _, err := ratingRepo.Upsert(context.Background(), &models.Rating{
			RoomID: roomID, UserID: string(rune('a' + i)), Rating: r,
		}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	room, err = svc.GetRoom(context.Background(), roomID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if room.AverageRating != 3.5 || room.RatingCount != 2 {
		t.Errorf("aggregate = %v/%v, want 3.5/2", room.AverageRating, room.RatingCount)
	}
}

func TestUpdateRoomRejectsNonPositivePrice(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	svc := NewRoomService(roomRepo, newFakeRatingRepo(), testLogger())

	roomID := roomRepo.put(&models.Room{Title: "Bedsitter", Price: 500})

	_, err := svc.UpdateRoom(context.Background(), roomID, map[string]interface{}{"price": 0})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}

	room, err := svc.UpdateRoom(context.Background(), roomID, map[string]interface{}{"price": 750})
	if err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if room.Price != 750 {
		t.Errorf("price = %d, want 750", room.Price)
	}
}
