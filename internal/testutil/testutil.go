// Package testutil provides testify mocks for the repo and verifier
// interfaces so service and handler tests can run without MongoDB or Google.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gatherly/gatherly/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JSONRequest builds an *http.Request with a JSON body.
func JSONRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	args := m.Called(ctx, id, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) DeleteAccountData(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BookingRepoMock struct {
	mock.Mock
}

func (m *BookingRepoMock) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingRepoMock) FindBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingRepoMock) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.UserBooking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserBooking), args.Error(1)
}

func (m *BookingRepoMock) CancelBooking(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type FavoriteRepoMock struct {
	mock.Mock
}

func (m *FavoriteRepoMock) AddFavorite(ctx context.Context, userID, eventID primitive.ObjectID) (*models.Favorite, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *FavoriteRepoMock) ListFavoriteEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *FavoriteRepoMock) RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

type EventRepoMock struct {
	mock.Mock
}

func (m *EventRepoMock) ListEvents(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *EventRepoMock) FindEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *EventRepoMock) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *EventRepoMock) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *models.Event) (*models.Event, error) {
	args := m.Called(ctx, id, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *EventRepoMock) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ReviewRepoMock struct {
	mock.Mock
}

func (m *ReviewRepoMock) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *ReviewRepoMock) ListReviewsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Review, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

// GoogleVerifierMock stubs the federated proof check.
type GoogleVerifierMock struct {
	mock.Mock
}

func (m *GoogleVerifierMock) VerifyIDToken(ctx context.Context, idToken, email string) error {
	args := m.Called(ctx, idToken, email)
	return args.Error(0)
}
