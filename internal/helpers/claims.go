package helpers

import "github.com/golang-jwt/jwt/v5"

// AuthClaims is the session token payload: the user id in the registered
// subject plus the account email.
type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IsOwner reports whether the token subject matches the given user id.
func (c *AuthClaims) IsOwner(userID string) bool {
	return c.Subject == userID
}
