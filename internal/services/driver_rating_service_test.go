package services

import (
	"context"
	"errors"
	"testing"

	"unistay/internal/apperrors"
	"unistay/internal/models"
)

func TestSubmitDriverRatingWritesBackAverage(t *testing.T) {
	ratingRepo := newFakeDriverRatingRepo()
	driverRepo := newFakeDriverRepo()
	svc := NewDriverRatingService(ratingRepo, driverRepo, testLogger())

	driverID := driverRepo.put(&models.Driver{FullName: "D", Rating: models.DefaultDriverRating})

	created, err := svc.SubmitRating(context.Background(), &models.DriverRating{
		DriverID: driverID, UserID: "u1", Rating: 5,
	})
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if !created {
		t.Error("first submission must report created")
	}
	if driverRepo.ratings[driverID] != 5 {
		t.Errorf("driver rating = %v, want 5", driverRepo.ratings[driverID])
	}

	created, err = svc.SubmitRating(context.Background(), &models.DriverRating{
		DriverID: driverID, UserID: "u2", Rating: 3,
	})
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if created != true {
		t.Error("different user must create a new rating")
	}
	if driverRepo.ratings[driverID] != 4 { // (5+3)/2
		t.Errorf("driver rating = %v, want 4", driverRepo.ratings[driverID])
	}
}

func TestSubmitDriverRatingUpsertsPerUser(t *testing.T) {
	ratingRepo := newFakeDriverRatingRepo()
	driverRepo := newFakeDriverRepo()
	svc := NewDriverRatingService(ratingRepo, driverRepo, testLogger())

	driverID := driverRepo.put(&models.Driver{FullName: "D"})

	if _, err := svc.SubmitRating(context.Background(), &models.DriverRating{DriverID: driverID, UserID: "u1", Rating: 2}); err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}

	created, err := svc.SubmitRating(context.Background(), &models.DriverRating{DriverID: driverID, UserID: "u1", Rating: 4})
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if created {
		t.Error("resubmission by the same user must overwrite, not create")
	}
	if n, _ := ratingRepo.Count(context.Background()); n != 1 {
		t.Errorf("stored ratings = %d, want 1", n)
	}
	if driverRepo.ratings[driverID] != 4 {
		t.Errorf("driver rating = %v, want 4", driverRepo.ratings[driverID])
	}
}

func TestDeleteLastDriverRatingResetsDefault(t *testing.T) {
	ratingRepo := newFakeDriverRatingRepo()
	driverRepo := newFakeDriverRepo()
	svc := NewDriverRatingService(ratingRepo, driverRepo, testLogger())

	driverID := driverRepo.put(&models.Driver{FullName: "D"})

	if _, err := svc.SubmitRating(context.Background(), &models.DriverRating{DriverID: driverID, UserID: "u1", Rating: 1}); err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if driverRepo.ratings[driverID] != 1 {
		t.Fatalf("driver rating = %v, want 1", driverRepo.ratings[driverID])
	}

	if err := svc.DeleteRating(context.Background(), driverID, "u1"); err != nil {
		t.Fatalf("DeleteRating: %v", err)
	}
	if driverRepo.ratings[driverID] != models.DefaultDriverRating {
		t.Errorf("driver rating = %v, want reset to %v", driverRepo.ratings[driverID], models.DefaultDriverRating)
	}
}

func TestSubmitDriverRatingValidation(t *testing.T) {
	ratingRepo := newFakeDriverRatingRepo()
	driverRepo := newFakeDriverRepo()
	svc := NewDriverRatingService(ratingRepo, driverRepo, testLogger())

	driverID := driverRepo.put(&models.Driver{FullName: "D"})

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.SubmitRating(context.Background(), &models.DriverRating{DriverID: driverID, UserID: "u1", Rating: rating}); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("rating %d: error = %v, want ErrValidation", rating, err)
		}
	}
}
