package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	UserName      string             `json:"user_name" bson:"user_name"`
	WebsiteRating int                `json:"website_rating" bson:"website_rating"`
	Review        string             `json:"review" bson:"review"`
	StudyYear     string             `json:"study_year" bson:"study_year"`
	RoomType      string             `json:"room_type" bson:"room_type"`
	IsApproved    bool               `json:"is_approved" bson:"is_approved"`
	IsPublic      bool               `json:"is_public" bson:"is_public"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
