package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the current user's own record.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Current handles GET /current. The Session middleware already performed
// the user lookup; this endpoint just echoes the record it resolved.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /current [get]
func (h *UserHandler) Current(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
