package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the root entity; bookings, favorites and reviews hang off it and are
// removed together with it. Password always holds a bcrypt hash, never a
// plaintext value, and is stripped from every response via `json:"-"`.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	GoogleID  string             `bson:"google_id,omitempty" json:"google_id,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean "leave
// unchanged"; only supplied fields end up in the update document.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
}
