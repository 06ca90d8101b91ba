package handlers

import (
	"errors"
	"net/http"

	"github.com/gatherly/gatherly/internal/middleware"
	"github.com/gatherly/gatherly/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps the sentinel taxonomy to HTTP statuses. Anything
// unrecognized is a 500 with a generic message; the detail goes to the
// context errors for the logging middleware.
func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, models.ErrMissingFields), errors.Is(err, models.ErrInvalidID), errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Email already registered"))
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Invalid email or password"))
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse("Access denied"))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("Not found"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
	}
}

// requireOwner checks that the verified token subject matches the user id the
// route operates on. Writes the failure response itself and reports success.
func requireOwner(c *gin.Context, userID string) bool {
	claims, ok := middleware.CallerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
		return false
	}
	if !claims.IsOwner(userID) {
		c.JSON(http.StatusForbidden, models.ErrorResponse("Access denied"))
		return false
	}
	return true
}
