package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a room review. One document per (room_id, user_id), enforced by a
// unique index; submissions are upserts against that pair.
type Rating struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RoomID    primitive.ObjectID `json:"room_id" bson:"room_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	UserName  string             `json:"user_name" bson:"user_name"`
	UserImage string             `json:"user_image" bson:"user_image"`
	Rating    int                `json:"rating" bson:"rating"`
	Review    string             `json:"review" bson:"review"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// DriverRating mirrors Rating for drivers. Unlike rooms, the computed average
// is written back onto the driver document after every change.
type DriverRating struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DriverID  primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	UserName  string             `json:"user_name" bson:"user_name"`
	UserImage string             `json:"user_image" bson:"user_image"`
	Rating    int                `json:"rating" bson:"rating"`
	Review    string             `json:"review" bson:"review"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
