package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roamly/booking-api/internal/api/middleware"
	"github.com/roamly/booking-api/internal/core/ports"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware.
// A missing user id means the middleware did not run for this route; reject
// with 401 before any service call.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return ports.Identity{UserID: userID, Email: email, Role: role}, nil
}
