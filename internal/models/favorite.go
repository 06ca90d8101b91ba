package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is one (user, event) pair. Uniqueness of the pair is enforced by a
// compound unique index created at startup, not by application logic.
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	EventID   primitive.ObjectID `bson:"event_id" json:"event_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
