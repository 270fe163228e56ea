package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/repository"
)

// UserHandler handles the current-user endpoint.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// Me godoc
// @Summary Get the authenticated user, including the credit balance
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "user not found",
			Code:  "USER_NOT_FOUND",
		})
	}

	return c.JSON(http.StatusOK, user)
}
