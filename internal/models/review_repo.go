package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	ListReviewsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*Review, error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	if err := Validate.Struct(review); err != nil {
		return nil, fmt.Errorf("invalid review data: %w", err)
	}

	col, err := mdb.GetCollection(ctx, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := col.InsertOne(ctx, review); err != nil {
		return nil, fmt.Errorf("error inserting review: %v", err)
	}
	return review, nil
}

func (mdb *MongodbRepo) ListReviewsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*Review, error) {
	col, err := mdb.GetCollection(ctx, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	reviews := []*Review{}
	for cursor.Next(ctx) {
		var review Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("error decoding review: %v", err)
		}
		reviews = append(reviews, &review)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return reviews, nil
}
