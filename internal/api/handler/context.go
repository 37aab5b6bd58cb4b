package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// currentUser extracts the user injected by the Session middleware. A
// missing user means the middleware did not run on this route; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return user, nil
}

// sessionToken returns the raw token stored by the Session middleware.
func sessionToken(c echo.Context) string {
	token, _ := c.Get("session_token").(string)
	return token
}
