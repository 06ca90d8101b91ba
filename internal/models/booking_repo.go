package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	FindBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*UserBooking, error)
	CancelBooking(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.SeatType == "" {
		booking.SeatType = "Standard"
	}
	booking.Cancelled = false
	booking.BookingDate = time.Now()

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	return booking, nil
}

func (mdb *MongodbRepo) FindBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

// ListBookingsByUser joins each booking with its event's display fields,
// newest bookings first. Bookings whose event has since been deleted still
// come back, just without the joined fields.
func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*UserBooking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         EventColName,
			"localField":   "event_id",
			"foreignField": "_id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$event", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{
			"title":     "$event.title",
			"image_url": "$event.image_url",
			"date_time": "$event.date_time",
			"location":  "$event.location",
		}}},
		{{Key: "$project", Value: bson.M{"event": 0}}},
		{{Key: "$sort", Value: bson.M{"booking_date": -1}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*UserBooking{}
	for cursor.Next(ctx) {
		var b UserBooking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return bookings, nil
}

// CancelBooking flips the cancelled flag; bookings are never hard-deleted
// outside the account cascade.
func (mdb *MongodbRepo) CancelBooking(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"cancelled": true}})
	if err != nil {
		return fmt.Errorf("error cancelling booking: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
