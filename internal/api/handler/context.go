package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

// principal extracts the authenticated user injected by the Auth middleware.
// Its absence means a protected handler was reached without passing the gate;
// fail closed with a 401 rather than assuming any identity.
func principal(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("principal").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication principal")
	}
	return user, nil
}
