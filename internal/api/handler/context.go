package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servihub/booking-api/internal/api/middleware"
	"github.com/servihub/booking-api/internal/core/domain"
)

// ctxClaims extracts the verified claims injected by the Auth middleware.
// Their presence proves the middleware ran; a route wired without it is a
// programming error surfaced as 401 rather than a nil-map panic.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(domain.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
