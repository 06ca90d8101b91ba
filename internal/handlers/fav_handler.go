package handlers

import (
	"net/http"

	"github.com/gatherly/gatherly/internal/models"
	"github.com/gatherly/gatherly/internal/services"
	"github.com/gin-gonic/gin"
)

func AddFavorite(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID  string `json:"userId" binding:"required"`
			EventID string `json:"eventId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if !requireOwner(c, req.UserID) {
			return
		}

		fav, err := f.AddFavorite(c.Request.Context(), req.UserID, req.EventID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(fav, ""))
	}
}

func ListUserFavorites(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		events, err := f.ListFavoriteEventsByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}

func RemoveFavorite(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		if err := f.RemoveFavorite(c.Request.Context(), userID, c.Param("eventId")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Favorite removed"))
	}
}
