package helpers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultGoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleVerifier checks that a Google-issued ID token is genuine and was
// issued for the claimed email. The interface exists so the account service
// can be tested without reaching Google.
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken, email string) error
}

type googleClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWKSGoogleVerifier validates ID tokens against Google's published JWKS.
type JWKSGoogleVerifier struct {
	jwksURL string
}

func NewGoogleVerifier(jwksURL string) *JWKSGoogleVerifier {
	if jwksURL == "" {
		jwksURL = DefaultGoogleJWKSURL
	}
	return &JWKSGoogleVerifier{jwksURL: jwksURL}
}

func (v *JWKSGoogleVerifier) VerifyIDToken(ctx context.Context, idToken, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(v.jwksURL, keyfunc.Options{Ctx: ctx})
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %v", err)
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(idToken, &googleClaims{}, jwks.Keyfunc)
	if err != nil {
		return fmt.Errorf("id token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*googleClaims)
	if !ok || !token.Valid {
		return errors.New("invalid or expired id token")
	}
	if claims.Issuer != "accounts.google.com" && claims.Issuer != "https://accounts.google.com" {
		return fmt.Errorf("unexpected id token issuer: %s", claims.Issuer)
	}
	if claims.Email != email {
		return errors.New("id token email does not match request")
	}
	return nil
}
