package services

import (
	"context"

	"github.com/gatherly/gatherly/internal/models"
)

type ReviewService struct {
	reviewRepo models.ReviewRepo
}

func NewReviewService(reviewRepo models.ReviewRepo) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
	}
}

type CreateReviewRequest struct {
	UserID  string `json:"userId" binding:"required"`
	EventID string `json:"eventId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (rs *ReviewService) CreateReview(ctx context.Context, req CreateReviewRequest) (*models.Review, error) {
	userID, err := parseObjectID(req.UserID)
	if err != nil {
		return nil, err
	}
	eventID, err := parseObjectID(req.EventID)
	if err != nil {
		return nil, err
	}

	return rs.reviewRepo.CreateReview(ctx, &models.Review{
		UserID:  userID,
		EventID: eventID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
}

func (rs *ReviewService) ListReviewsByEvent(ctx context.Context, eventID string) ([]*models.Review, error) {
	eid, err := parseObjectID(eventID)
	if err != nil {
		return nil, err
	}
	return rs.reviewRepo.ListReviewsByEvent(ctx, eid)
}
