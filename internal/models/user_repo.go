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

// UserRepo is the credential store: user lookups by email keep the password
// hash so the service can verify it, lookups by id never carry it.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*User, error)
	DeleteAccountData(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	col, err := mdb.GetCollection(ctx, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// Projection keeps the hash out of memory entirely for profile reads.
	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var user User
	err = col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by id: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		// The unique index on email is the authoritative check; the service's
		// pre-read only exists for the friendlier error path.
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}
	return user, nil
}

func (mdb *MongodbRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*User, error) {
	col, err := mdb.GetCollection(ctx, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var updated User
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating user: %v", err)
	}
	return &updated, nil
}

// DeleteAccountData removes the user's bookings, favorites, reviews and the
// user record as one unit. It runs inside a session transaction so a failed
// sub-deletion leaves no orphaned partial state; requires the deployment to be
// a replica set.
func (mdb *MongodbRepo) DeleteAccountData(ctx context.Context, id primitive.ObjectID) error {
	users, err := mdb.GetCollection(ctx, UserColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	session, err := mdb.mongodbClient.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %v", err)
	}
	defer session.EndSession(ctx)

	db := users.Database()
	owned := bson.M{"user_id": id}

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for _, colName := range []string{BookingColName, FavoriteColName, ReviewColName} {
			if _, err := db.Collection(colName).DeleteMany(sc, owned); err != nil {
				return nil, fmt.Errorf("error deleting %s: %v", colName, err)
			}
		}
		res, err := users.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, fmt.Errorf("error deleting user: %v", err)
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	return err
}
