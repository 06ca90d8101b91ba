package handlers

import (
	"net/http"

	"github.com/gatherly/gatherly/internal/models"
	"github.com/gatherly/gatherly/internal/services"
	"github.com/gin-gonic/gin"
)

func Register(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		payload, err := a.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(payload, "User registered successfully"))
	}
}

func Login(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		payload, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(payload, "Login successful"))
	}
}

func GoogleLogin(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.GoogleLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Missing required fields"))
			return
		}

		payload, err := a.GoogleLogin(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(payload, "Google Sign-In successful"))
	}
}

func GetProfile(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		user, err := a.GetProfile(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func UpdateProfile(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		var update models.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		user, err := a.UpdateProfile(c.Request.Context(), userID, update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile updated successfully"))
	}
}

func DeleteAccount(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		if err := a.DeleteAccount(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Account and all related data deleted successfully"))
	}
}

func UploadAvatar(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !requireOwner(c, userID) {
			return
		}

		var req struct {
			Image string `json:"image" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		url, err := a.UploadAvatar(c.Request.Context(), userID, req.Image)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"avatarUrl": url}, "Avatar updated"))
	}
}
