package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherly/gatherly/internal/handlers"
	"github.com/gatherly/gatherly/internal/helpers"
	"github.com/gatherly/gatherly/internal/middleware"
	"github.com/gatherly/gatherly/internal/models"
	"github.com/gatherly/gatherly/internal/services"
	"github.com/gatherly/gatherly/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBookingRouter(repo *testutil.BookingRepoMock, issuer *helpers.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := services.NewBookingService(repo)
	grp := r.Group("/api/bookings", middleware.Auth(issuer))
	grp.POST("", handlers.CreateBooking(svc))
	grp.GET("/user/:userId", handlers.ListUserBookings(svc))
	grp.PUT("/:id/cancel", handlers.CancelBooking(svc))

	return r
}

func TestCreateBookingHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()

	t.Run("Created", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		repo.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
			return b.UserID == userID && b.EventID == eventID && b.Tickets == 2
		})).Return(&models.Booking{
			ID:       primitive.NewObjectID(),
			UserID:   userID,
			EventID:  eventID,
			Tickets:  2,
			SeatType: "Standard",
		}, nil).Once()

		req := testutil.JSONRequest("POST", "/api/bookings", gin.H{
			"userId": userID.Hex(), "eventId": eventID.Hex(), "tickets": 2, "totalPrice": 90.0,
		})
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("CannotBookForSomeoneElse", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		req := testutil.JSONRequest("POST", "/api/bookings", gin.H{
			"userId": userID.Hex(), "eventId": eventID.Hex(), "tickets": 1,
		})
		req.Header.Set("Authorization", bearerFor(t, issuer, primitive.NewObjectID().Hex(), "eve@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("NoToken", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		req := testutil.JSONRequest("POST", "/api/bookings", gin.H{
			"userId": userID.Hex(), "eventId": eventID.Hex(), "tickets": 1,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCancelBookingHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	t.Run("OwnerCancels", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		repo.On("FindBookingByID", mock.Anything, bookingID).
			Return(&models.Booking{ID: bookingID, UserID: userID}, nil).Once()
		repo.On("CancelBooking", mock.Anything, bookingID).Return(nil).Once()

		req := httptest.NewRequest("PUT", "/api/bookings/"+bookingID.Hex()+"/cancel", nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("StrangerCannotCancel", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		repo.On("FindBookingByID", mock.Anything, bookingID).
			Return(&models.Booking{ID: bookingID, UserID: userID}, nil).Once()

		req := httptest.NewRequest("PUT", "/api/bookings/"+bookingID.Hex()+"/cancel", nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, primitive.NewObjectID().Hex(), "eve@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		repo.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	})

	t.Run("UnknownBooking", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		repo.On("FindBookingByID", mock.Anything, bookingID).Return(nil, models.ErrNotFound).Once()

		req := httptest.NewRequest("PUT", "/api/bookings/"+bookingID.Hex()+"/cancel", nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListUserBookingsHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("OwnerOnly", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		req := httptest.NewRequest("GET", "/api/bookings/user/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, primitive.NewObjectID().Hex(), "eve@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ReturnsJoinedBookings", func(t *testing.T) {
		repo := new(testutil.BookingRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newBookingRouter(repo, issuer)

		repo.On("ListBookingsByUser", mock.Anything, userID).Return([]*models.UserBooking{
			{
				Booking: models.Booking{ID: primitive.NewObjectID(), UserID: userID, Tickets: 2},
				Title:   "Jazz Night",
			},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/bookings/user/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Jazz Night")
	})
}
