package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	EventID     primitive.ObjectID `bson:"event_id" json:"event_id"`
	Tickets     int                `bson:"tickets" json:"tickets"`
	TotalPrice  float64            `bson:"total_price" json:"totalPrice"`
	SeatType    string             `bson:"seat_type" json:"seatType"`
	Cancelled   bool               `bson:"cancelled" json:"cancelled"`
	BookingDate time.Time          `bson:"booking_date" json:"bookingDate"`
}

// UserBooking is a booking joined with the descriptive event fields the
// booking list screen needs.
type UserBooking struct {
	Booking  `bson:",inline"`
	Title    string    `bson:"title" json:"title"`
	ImageURL string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	DateTime time.Time `bson:"date_time" json:"dateTime"`
	Location string    `bson:"location" json:"location"`
}
