package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SithHades/fridgemaster/internal/auth"
)

// currentUserID pulls the authenticated user's ID out of the JWT middleware
// context. The router's ParseTokenFunc stores *auth.Claims under "user".
func currentUserID(c echo.Context) (uuid.UUID, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims.UserID, nil
}
