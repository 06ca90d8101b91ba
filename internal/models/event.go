package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Organizer   string             `bson:"organizer" json:"organizer" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	DateTime    time.Time          `bson:"date_time" json:"dateTime" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Rating      float64            `bson:"rating" json:"rating"`
	Attendees   int                `bson:"attendees" json:"attendees"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Difficulty  string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Listing knobs for the public catalogue. Sort accepts the labels the mobile
// client sends verbatim: "Popular", "Rating", "Nearest", "Price: Low to High".
type EventFilter struct {
	Category string
	Search   string
	Sort     string
}

const (
	SortPopular  = "Popular"
	SortRating   = "Rating"
	SortNearest  = "Nearest"
	SortPriceAsc = "Price: Low to High"
)
