package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gatherly/gatherly/internal/helpers"
	"github.com/gatherly/gatherly/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountService orchestrates registration, login, federated login, profile
// reads and updates, and account deletion over the credential store, the
// password hasher and the token issuer.
type AccountService struct {
	userRepo   models.UserRepo
	issuer     *helpers.TokenIssuer
	google     helpers.GoogleVerifier
	cloudinary *cloudinary.Cloudinary
	bcryptCost int
}

func NewAccountService(userRepo models.UserRepo, issuer *helpers.TokenIssuer, google helpers.GoogleVerifier, cld *cloudinary.Cloudinary, bcryptCost int) *AccountService {
	return &AccountService{
		userRepo:   userRepo,
		issuer:     issuer,
		google:     google,
		cloudinary: cld,
		bcryptCost: bcryptCost,
	}
}

// AuthPayload is the envelope data returned by every credential flow.
type AuthPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Token     string `json:"token"`
}

type GoogleLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	GoogleID string `json:"googleId" binding:"required"`
	IDToken  string `json:"idToken" binding:"required"`
	PhotoURL string `json:"photoUrl"`
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrInvalidID
	}
	return oid, nil
}

func (as *AccountService) Register(ctx context.Context, name, email, password, phone string) (*AuthPayload, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email", models.ErrMissingFields)
	}
	if name == "" || password == "" {
		return nil, models.ErrMissingFields
	}

	_, err := as.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password, as.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user, err := as.userRepo.CreateUser(ctx, &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Phone:    phone,
	})
	if err != nil {
		return nil, err
	}

	return as.payloadFor(user)
}

// Login deliberately returns the same ErrInvalidCredentials for an unknown
// email and a wrong password so callers cannot enumerate accounts.
func (as *AccountService) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	if email == "" || password == "" {
		return nil, models.ErrMissingFields
	}

	user, err := as.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !helpers.VerifyPassword(user.Password, password) {
		return nil, models.ErrInvalidCredentials
	}

	return as.payloadFor(user)
}

// GoogleLogin verifies the supplied ID token against Google before trusting
// any of the identity claims. Existing accounts only get the Google id and
// avatar backfilled when those fields are still empty; a new account gets a
// hash of a random password so it cannot be entered through password login.
func (as *AccountService) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*AuthPayload, error) {
	if req.Email == "" || req.GoogleID == "" || req.IDToken == "" {
		return nil, models.ErrMissingFields
	}

	if err := as.google.VerifyIDToken(ctx, req.IDToken, req.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidCredentials, err)
	}

	user, err := as.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	if user != nil {
		set := bson.M{}
		if user.GoogleID == "" {
			set["google_id"] = req.GoogleID
		}
		if req.PhotoURL != "" && user.AvatarURL == "" {
			set["avatar_url"] = req.PhotoURL
		}
		user, err = as.userRepo.UpdateByID(ctx, user.ID, set)
		if err != nil {
			return nil, err
		}
		return as.payloadFor(user)
	}

	random, err := helpers.RandomPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %v", err)
	}
	hash, err := helpers.HashPassword(random, as.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user, err = as.userRepo.CreateUser(ctx, &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		GoogleID:  req.GoogleID,
		AvatarURL: req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	return as.payloadFor(user)
}

// GetProfile returns the user without the password field, always.
func (as *AccountService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return as.userRepo.FindByID(ctx, oid)
}

// UpdateProfile modifies only the fields the caller supplied; omitted fields
// keep their stored values.
func (as *AccountService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.AvatarURL != nil {
		set["avatar_url"] = *update.AvatarURL
	}

	return as.userRepo.UpdateByID(ctx, oid, set)
}

// DeleteAccount removes the user and every booking, favorite and review that
// references it, all-or-nothing.
func (as *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	oid, err := parseObjectID(userID)
	if err != nil {
		return err
	}
	return as.userRepo.DeleteAccountData(ctx, oid)
}

func (as *AccountService) UploadAvatar(ctx context.Context, userID, image string) (string, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return "", err
	}

	url, err := helpers.UploadAvatar(ctx, as.cloudinary, image)
	if err != nil {
		return "", err
	}

	if _, err := as.userRepo.UpdateByID(ctx, oid, bson.M{"avatar_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (as *AccountService) payloadFor(user *models.User) (*AuthPayload, error) {
	token, err := as.issuer.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %v", err)
	}
	return &AuthPayload{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Token:     token,
	}, nil
}
