package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteRepo interface {
	AddFavorite(ctx context.Context, userID, eventID primitive.ObjectID) (*Favorite, error)
	ListFavoriteEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]*Event, error)
	RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error
}

// AddFavorite inserts the (user, event) pair. A second insert of the same pair
// trips the unique compound index and is treated as success, so the call is
// idempotent and exactly one record survives.
func (mdb *MongodbRepo) AddFavorite(ctx context.Context, userID, eventID primitive.ObjectID) (*Favorite, error) {
	col, err := mdb.GetCollection(ctx, FavoriteColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	fav := &Favorite{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}

	_, err = col.InsertOne(ctx, fav)
	if mongo.IsDuplicateKeyError(err) {
		var existing Favorite
		if err := col.FindOne(ctx, bson.M{"user_id": userID, "event_id": eventID}).Decode(&existing); err != nil {
			return nil, fmt.Errorf("error loading existing favorite: %v", err)
		}
		return &existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error inserting favorite: %v", err)
	}
	return fav, nil
}

// ListFavoriteEventsByUser returns the favorited events themselves (not the
// join records), most recently favorited first.
func (mdb *MongodbRepo) ListFavoriteEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, FavoriteColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         EventColName,
			"localField":   "event_id",
			"foreignField": "_id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: "$event"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$event"}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating favorites: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding favorite event: %v", err)
		}
		events = append(events, &event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, FavoriteColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"user_id": userID, "event_id": eventID})
	if err != nil {
		return fmt.Errorf("error removing favorite: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
