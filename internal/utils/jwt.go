// Package utils provides helper functions for password hashing and for
// issuing and verifying the bearer tokens used by the poster endpoints.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTLSeconds is the lifetime of an access token. The login response
// reports it verbatim as expires_in.
const TokenTTLSeconds = 86400

// ErrInvalidToken is returned by ParseEmail for any token that fails
// parsing, signature verification, expiry, or lacks an email claim. Callers
// do not need to distinguish these cases; they all map to a 401.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT carrying the user's email.
// The claims are the email, an expiry TokenTTLSeconds from now, and the
// issued-at time.
func NewAccessToken(secret, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(TokenTTLSeconds * time.Second).Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseEmail verifies a raw token string and returns the email claim. It is
// the single identity-extraction capability shared by every authenticated
// route: signature, algorithm and expiry checks happen here and nowhere
// else.
func ParseEmail(secret, raw string) (string, error) {
	// An empty secret means no key was configured; no token can be trusted,
	// including ones HMAC-signed with the empty key.
	if secret == "" {
		return "", ErrInvalidToken
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
