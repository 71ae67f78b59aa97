package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("s3cret", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	email, err := ParseEmail("s3cret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if email != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", email)
	}
}

func TestParseEmailRejects(t *testing.T) {
	valid, err := NewAccessToken("s3cret", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	expired := mustSign(t, jwt.MapClaims{
		"email": "a@b.com",
		"exp":   time.Now().UTC().Add(-time.Hour).Unix(),
	}, "s3cret")
	noEmail := mustSign(t, jwt.MapClaims{
		"exp": time.Now().UTC().Add(time.Hour).Unix(),
	}, "s3cret")
	emptyKey := mustSign(t, jwt.MapClaims{
		"email": "forged@example.com",
		"exp":   time.Now().UTC().Add(time.Hour).Unix(),
	}, "")

	cases := []struct {
		name   string
		secret string
		raw    string
	}{
		{"wrong secret", "other", valid},
		{"garbage", "s3cret", "garbage"},
		{"expired", "s3cret", expired},
		{"missing email claim", "s3cret", noEmail},
		// No configured secret must reject everything, signature match or not.
		{"empty secret", "", emptyKey},
		{"empty secret with valid token", "", valid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseEmail(tc.secret, tc.raw); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func mustSign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}
