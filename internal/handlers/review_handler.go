package handlers

import (
	"net/http"

	"github.com/gatherly/gatherly/internal/models"
	"github.com/gatherly/gatherly/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateReview(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if !requireOwner(c, req.UserID) {
			return
		}

		review, err := r.CreateReview(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(review, ""))
	}
}

func ListEventReviews(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := r.ListReviewsByEvent(c.Request.Context(), c.Param("eventId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
	}
}
