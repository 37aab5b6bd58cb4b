package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/streamflix/streaming-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session_token"

// Session validates the request's session token and injects the current
// user into context. The token is read from the session cookie, falling
// back to a bearer Authorization header for non-browser clients. Each
// protected request re-validates against the user store; there is no
// per-process session cache.
func Session(validator ports.SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
			}

			user, err := validator.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set("user", user)
			c.Set("session_token", token)

			return next(c)
		}
	}
}

// ExtractToken pulls the session token from the cookie or, failing that,
// the Authorization header. Returns "" when neither is present.
func ExtractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
