package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("")
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	assert.NoError(t, err)

	token, err := issuer.Issue("64f000000000000000000001", "ana@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.True(t, claims.IsOwner("64f000000000000000000001"))
	assert.False(t, claims.IsOwner("64f000000000000000000002"))

	// Expiry lands 7 days out, give or take scheduling slack.
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewTokenIssuer("secret-one")
	other, _ := NewTokenIssuer("secret-two")

	token, err := issuer.Issue("64f000000000000000000001", "ana@example.com")
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "64f000000000000000000001",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "64f000000000000000000001",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.Error(t, err)
}
