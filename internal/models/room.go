package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title" binding:"required"`
	Description    string             `json:"description" bson:"description"`
	Price          int                `json:"price" bson:"price" binding:"required"`
	MinutesAway    int                `json:"minutes_away" bson:"minutes_away"`
	Location       string             `json:"location" bson:"location"`
	Amenities      Amenities          `json:"amenities" bson:"amenities"`
	Contact        RoomContact        `json:"contact" bson:"contact"`
	Images         []string           `json:"images" bson:"images"`
	AvailableRooms int                `json:"available_rooms" bson:"available_rooms"`
	BestRoom       bool               `json:"best_room" bson:"best_room"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type Amenities struct {
	WiFi        bool `json:"wifi" bson:"wifi"`
	Shower      bool `json:"shower" bson:"shower"`
	Bathtub     bool `json:"bathtub" bson:"bathtub"`
	Table       bool `json:"table" bson:"table"`
	Bed         bool `json:"bed" bson:"bed"`
	Electricity bool `json:"electricity" bson:"electricity"`
}

type RoomContact struct {
	Phone    string `json:"phone" bson:"phone"`
	WhatsApp string `json:"whatsapp" bson:"whatsapp"`
	Email    string `json:"email" bson:"email"`
}

// RoomWithRating is the read-side shape: the average is computed from the
// ratings collection on every fetch, never stored on the room document.
type RoomWithRating struct {
	Room          `bson:",inline"`
	AverageRating float64 `json:"average_rating" bson:"average_rating"`
	RatingCount   int64   `json:"rating_count" bson:"rating_count"`
}
