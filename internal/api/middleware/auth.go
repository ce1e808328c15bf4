package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/servihub/booking-api/internal/api/metrics"
	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

const (
	// TokenCookie is the cookie carrying the signed identity token.
	TokenCookie = "token"
	// ClaimsKey is the context key under which verified claims are stored.
	ClaimsKey = "claims"
)

// Revocations abstracts the token revocation list (Redis). Errors from the
// list fail open: a degraded Redis must not lock every caller out.
type Revocations interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth reads the token cookie, verifies it, and injects the decoded claims
// into the request context. Missing cookie → 401 "Unauthorized access";
// failed verification or revoked token → 401 "Invalid token".
func Auth(tokens ports.TokenService, revoked Revocations, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), cookie.Value)
				if err != nil {
					log.Warn().Err(err).Msg("revocation check failed, continuing")
				} else if isRevoked {
					metrics.AuthFailuresTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
				}
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
