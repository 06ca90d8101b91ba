package services

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly/internal/models"
)

type BookingService struct {
	bookingRepo models.BookingRepo
}

func NewBookingService(bookingRepo models.BookingRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
	}
}

type CreateBookingRequest struct {
	UserID     string  `json:"userId" binding:"required"`
	EventID    string  `json:"eventId" binding:"required"`
	Tickets    int     `json:"tickets" binding:"required,min=1"`
	TotalPrice float64 `json:"totalPrice"`
	SeatType   string  `json:"seatType"`
}

func (bs *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	userID, err := parseObjectID(req.UserID)
	if err != nil {
		return nil, err
	}
	eventID, err := parseObjectID(req.EventID)
	if err != nil {
		return nil, err
	}
	if req.Tickets < 1 {
		return nil, fmt.Errorf("%w: tickets must be at least 1", models.ErrMissingFields)
	}

	return bs.bookingRepo.CreateBooking(ctx, &models.Booking{
		UserID:     userID,
		EventID:    eventID,
		Tickets:    req.Tickets,
		TotalPrice: req.TotalPrice,
		SeatType:   req.SeatType,
	})
}

func (bs *BookingService) ListBookingsByUser(ctx context.Context, userID string) ([]*models.UserBooking, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return bs.bookingRepo.ListBookingsByUser(ctx, oid)
}

// CancelBooking flips the cancellation flag after checking the booking belongs
// to the requester.
func (bs *BookingService) CancelBooking(ctx context.Context, id, requesterID string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	booking, err := bs.bookingRepo.FindBookingByID(ctx, oid)
	if err != nil {
		return err
	}
	if booking.UserID.Hex() != requesterID {
		return models.ErrForbidden
	}

	return bs.bookingRepo.CancelBooking(ctx, oid)
}
