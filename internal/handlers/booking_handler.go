package handlers

import (
	"net/http"

	"github.com/gatherly/gatherly/internal/middleware"
	"github.com/gatherly/gatherly/internal/models"
	"github.com/gatherly/gatherly/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if !requireOwner(c, req.UserID) {
			return
		}

		booking, err := b.CreateBooking(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, ""))
	}
}

func ListUserBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		bookings, err := b.ListBookingsByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CallerClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
			return
		}

		if err := b.CancelBooking(c.Request.Context(), c.Param("id"), claims.Subject); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Booking cancelled"))
	}
}
