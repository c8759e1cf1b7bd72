package utils

import (
	"math"
	"testing"
)

func TestBoxAround(t *testing.T) {
	box := BoxAround(-15.4, 28.31, 2.0)

	delta := 2.0 / KmPerDegree
	if math.Abs(box.MaxLat-(-15.4+delta)) > 1e-9 || math.Abs(box.MinLat-(-15.4-delta)) > 1e-9 {
		t.Errorf("lat range = [%v, %v], want ±%v around -15.4", box.MinLat, box.MaxLat, delta)
	}
	if math.Abs(box.MaxLng-(28.31+delta)) > 1e-9 || math.Abs(box.MinLng-(28.31-delta)) > 1e-9 {
		t.Errorf("lng range = [%v, %v], want ±%v around 28.31", box.MinLng, box.MaxLng, delta)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoxAround(-15.4, 28.31, 2.0)
	delta := 2.0 / KmPerDegree

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"center", -15.4, 28.31, true},
		{"on max lat bound", -15.4 + delta, 28.31, true},
		{"on min lng bound", -15.4, 28.31 - delta, true},
		{"just north of box", -15.4 + delta + 1e-6, 28.31, false},
		{"just west of box", -15.4, 28.31 - delta - 1e-6, false},
		{"far away", -14.0, 29.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.lat, tt.lng); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestIsValidCoordinates(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{-90, 180, true},
		{90, -180, true},
		{90.01, 0, false},
		{-90.01, 0, false},
		{0, 180.01, false},
		{0, -180.01, false},
	}

	for _, tt := range tests {
		if got := IsValidCoordinates(tt.lat, tt.lng); got != tt.want {
			t.Errorf("IsValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
		}
	}
}
