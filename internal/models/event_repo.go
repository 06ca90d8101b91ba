package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	FindEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}

// eventQuery translates the catalogue filter into a Mongo query document:
// exact category match (the "All" pseudo-category matches everything) and a
// case-insensitive substring search over title, description and organizer.
func eventQuery(filter EventFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" && filter.Category != "All" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"organizer": regex},
		}
	}
	return query
}

// eventSort maps the client-facing sort labels to index-friendly sort specs.
// Unknown labels fall back to soonest-first.
func eventSort(sort string) bson.D {
	switch sort {
	case SortPopular:
		return bson.D{{Key: "attendees", Value: -1}}
	case SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortNearest:
		return bson.D{{Key: "date_time", Value: 1}}
	default:
		return bson.D{{Key: "date_time", Value: 1}}
	}
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(eventSort(filter.Sort))
	cursor, err := col.Find(ctx, eventQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) FindEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event: %v", err)
	}
	return &event, nil
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("error inserting event: %v", err)
	}
	return event, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{
		"title":       event.Title,
		"description": event.Description,
		"organizer":   event.Organizer,
		"category":    event.Category,
		"date_time":   event.DateTime,
		"location":    event.Location,
		"price":       event.Price,
		"image_url":   event.ImageURL,
		"rating":      event.Rating,
		"attendees":   event.Attendees,
		"duration":    event.Duration,
		"difficulty":  event.Difficulty,
		"tags":        event.Tags,
		"updated_at":  time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating event: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
