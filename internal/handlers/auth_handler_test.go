package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAuthRouter(repo *testutil.UserRepoMock, issuer *helpers.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := services.NewAccountService(repo, issuer, nil, nil, 4)
	auth := middleware.Auth(issuer)

	grp := r.Group("/api/auth")
	grp.POST("/register", handlers.Register(svc))
	grp.POST("/login", handlers.Login(svc))
	grp.GET("/:userId", auth, handlers.GetProfile(svc))
	grp.PUT("/:userId", auth, handlers.UpdateProfile(svc))
	grp.DELETE("/:userId", auth, handlers.DeleteAccount(svc))

	return r
}

func bearerFor(t *testing.T, issuer *helpers.TokenIssuer, userID, email string) string {
	t.Helper()
	token, err := issuer.Issue(userID, email)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, models.ErrNotFound).Once()
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(&models.User{
			ID:    primitive.NewObjectID(),
			Name:  "Ana",
			Email: "ana@example.com",
		}, nil).Once()

		req := testutil.JSONRequest("POST", "/api/auth/register", gin.H{
			"name": "Ana", "email": "ana@example.com", "password": "hunter2pass", "phone": "555-0100",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body models.ApiResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		data := body.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])
		assert.Equal(t, "ana@example.com", data["email"])
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		repo.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(&models.User{Email: "ana@example.com"}, nil).Once()

		req := testutil.JSONRequest("POST", "/api/auth/register", gin.H{
			"name": "Ana", "email": "ana@example.com", "password": "hunter2pass",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("MissingBodyFields", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		req := testutil.JSONRequest("POST", "/api/auth/register", gin.H{"email": "ana@example.com"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	hash, _ := helpers.HashPassword("hunter2pass", 4)
	stored := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: hash,
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(stored, nil).Once()

		req := testutil.JSONRequest("POST", "/api/auth/login", gin.H{
			"email": "ana@example.com", "password": "hunter2pass",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SameResponseForUnknownEmailAndWrongPassword", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, models.ErrNotFound).Once()
		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(stored, nil).Once()

		reqUnknown := testutil.JSONRequest("POST", "/api/auth/login", gin.H{
			"email": "ghost@example.com", "password": "hunter2pass",
		})
		wUnknown := httptest.NewRecorder()
		router.ServeHTTP(wUnknown, reqUnknown)

		reqWrong := testutil.JSONRequest("POST", "/api/auth/login", gin.H{
			"email": "ana@example.com", "password": "wrong",
		})
		wWrong := httptest.NewRecorder()
		router.ServeHTTP(wWrong, reqWrong)

		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
		assert.Equal(t, wUnknown.Body.String(), wWrong.Body.String())
	})
}

func TestGetProfileHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("NoToken", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		req := httptest.NewRequest("GET", "/api/auth/"+userID.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ForeignToken", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		req := httptest.NewRequest("GET", "/api/auth/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, primitive.NewObjectID().Hex(), "eve@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("OwnerNeverSeesPasswordField", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		repo.On("FindByID", mock.Anything, userID).Return(&models.User{
			ID:       userID,
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "$2a$10$should-never-leak",
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/auth/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "should-never-leak")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		repo.On("FindByID", mock.Anything, userID).Return(nil, models.ErrNotFound).Once()

		req := httptest.NewRequest("GET", "/api/auth/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	t.Run("PartialUpdateOnlyTouchesSuppliedFields", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		userID := primitive.NewObjectID()
		repo.On("UpdateByID", mock.Anything, userID, mock.MatchedBy(func(set bson.M) bool {
			_, hasPhone := set["phone"]
			_, hasAvatar := set["avatar_url"]
			return set["name"] == "Ana B." && !hasPhone && !hasAvatar
		})).Return(&models.User{ID: userID, Name: "Ana B."}, nil).Once()

		req := testutil.JSONRequest("PUT", "/api/auth/"+userID.Hex(), gin.H{"name": "Ana B."})
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		userID := primitive.NewObjectID()
		repo.On("DeleteAccountData", mock.Anything, userID).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/api/auth/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("CascadeFailureIsGeneric500", func(t *testing.T) {
		repo := new(testutil.UserRepoMock)
		issuer, _ := helpers.NewTokenIssuer("test-secret")
		router := newAuthRouter(repo, issuer)

		userID := primitive.NewObjectID()
		repo.On("DeleteAccountData", mock.Anything, userID).
			Return(errors.New("transaction aborted: replica set unreachable")).Once()

		req := httptest.NewRequest("DELETE", "/api/auth/"+userID.Hex(), nil)
		req.Header.Set("Authorization", bearerFor(t, issuer, userID.Hex(), "ana@example.com"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// Internal detail stays out of the response body.
		assert.False(t, strings.Contains(w.Body.String(), "replica set"))
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}
