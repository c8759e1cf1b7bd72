package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedRoom is a bookmark. (user_id, room_id) is unique; the room document is
// joined in at read time.
type SavedRoom struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	RoomID    primitive.ObjectID `json:"room_id" bson:"room_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type SavedRoomWithRoom struct {
	SavedRoom `bson:",inline"`
	Room      *Room `json:"room" bson:"room"`
}
