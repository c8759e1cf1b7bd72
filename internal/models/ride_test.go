package models

import "testing"

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to RideStatus
		want     bool
	}{
		{RideStatusPending, RideStatusAccepted, true},
		{RideStatusPending, RideStatusCancelled, true},
		{RideStatusPending, RideStatusInProgress, false},
		{RideStatusAccepted, RideStatusInProgress, true},
		{RideStatusAccepted, RideStatusCancelled, true},
		{RideStatusAccepted, RideStatusCompleted, false},
		{RideStatusInProgress, RideStatusCompleted, true},
		{RideStatusInProgress, RideStatusCancelled, true},
		{RideStatusInProgress, RideStatusAccepted, false},
		{RideStatusCompleted, RideStatusPending, false},
		{RideStatusCancelled, RideStatusAccepted, false},
	}

	for _, tt := range tests {
		if got := ValidTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRideStatusIsTerminal(t *testing.T) {
	for _, s := range []RideStatus{RideStatusCompleted, RideStatusCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
	for _, s := range []RideStatus{RideStatusPending, RideStatusAccepted, RideStatusInProgress} {
		if s.IsTerminal() {
			t.Errorf("%s must not be terminal", s)
		}
	}
}

func TestRideStatusIsValid(t *testing.T) {
	if RideStatus("teleporting").IsValid() {
		t.Error("unknown status must be invalid")
	}
	if !RideStatusPending.IsValid() {
		t.Error("pending must be valid")
	}
}

func TestBookingTypeIsValid(t *testing.T) {
	valid := []BookingType{
		BookingTypeRegular, BookingTypeSemesterMoveIn, BookingTypeSemesterMoveOut,
		BookingTypeHolidayTransport, BookingTypeGroupBooking,
	}
	for _, b := range valid {
		if !b.IsValid() {
			t.Errorf("%s must be valid", b)
		}
	}
	if BookingType("charter").IsValid() {
		t.Error("unknown booking type must be invalid")
	}
}
