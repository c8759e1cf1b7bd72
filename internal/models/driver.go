package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverStatus string

const (
	DriverStatusActive    DriverStatus = "active"
	DriverStatusInactive  DriverStatus = "inactive"
	DriverStatusSuspended DriverStatus = "suspended"
)

// Default per-kilometer rate used when a driver is created without one and as
// the quote fallback when no active driver exists.
const DefaultPricePerKm = 15.0

// DefaultDriverRating is also the value the aggregator resets to when a
// driver's last rating is deleted.
const DefaultDriverRating = 5.0

type Driver struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName      string             `json:"full_name" bson:"full_name" binding:"required"`
	ContactNumber string             `json:"contact_number" bson:"contact_number" binding:"required"`
	Email         string             `json:"email" bson:"email" binding:"required,email"`
	CarDetails    CarDetails         `json:"car_details" bson:"car_details"`
	Rating        float64            `json:"rating" bson:"rating"`
	TotalRides    int64              `json:"total_rides" bson:"total_rides"`
	IsAvailable   bool               `json:"is_available" bson:"is_available"`
	PricePerKm    float64            `json:"price_per_km" bson:"price_per_km"`
	Status        DriverStatus       `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type CarDetails struct {
	Make         string `json:"make" bson:"make"`
	Model        string `json:"model" bson:"model"`
	Year         int    `json:"year" bson:"year"`
	Color        string `json:"color" bson:"color"`
	LicensePlate string `json:"license_plate" bson:"license_plate"`
}
