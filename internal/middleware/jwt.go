// Package middleware provides reusable HTTP middleware: bearer-token
// authentication, Redis response caching and Redis rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/utils"
)

// emailKey is the context key under which the authenticated user's email is
// stored for downstream handlers.
const emailKey = "email"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's email claim into the request context. A missing
// header, a malformed header and an invalid or expired token all produce
// the same 401 body, matching the external contract.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			email, err := utils.ParseEmail(secret, raw)
			if err != nil {
				return unauthorized(c)
			}
			c.Set(emailKey, email)
			return next(c)
		}
	}
}

// Email retrieves the authenticated email stored by JWTAuth, or "" when the
// request is unauthenticated.
func Email(c echo.Context) string {
	if v, ok := c.Get(emailKey).(string); ok {
		return v
	}
	return ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error":   true,
		"message": "Authorization header ('Bearer token') not found",
	})
}
