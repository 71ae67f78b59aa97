// Package handler exposes the HTTP handlers for the movie catalog API.
// Handlers depend on narrow store interfaces rather than concrete
// repositories so they can be exercised in tests without a database.
package handler

import (
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every per-request database call.
const dbTimeout = 5 * time.Second

// fail writes the uniform error envelope used by every failure response.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": true, "message": message})
}

// firstUnexpectedParam reports the first query parameter key outside the
// allowed set. The raw query is walked left to right so the offending key
// named in the error is the one the caller sent first.
func firstUnexpectedParam(rawQuery string, allowed ...string) (string, bool) {
	ok := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		ok[k] = true
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if !ok[key] {
			return key, true
		}
	}
	return "", false
}

// invalidParamMessage builds the 400 body used by the strict endpoints when
// a forbidden query parameter is present.
func invalidParamMessage(key string) string {
	return "Invalid query parameters: " + key + ". Query parameters are not permitted."
}
