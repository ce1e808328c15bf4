package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/servihub/booking-api/internal/api/metrics"
	"github.com/servihub/booking-api/internal/api/middleware"
	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

// TokenRevoker marks a logged-out token as unusable for its remaining
// validity window.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// AuthHandler issues and clears the identity token cookie.
type AuthHandler struct {
	tokens       ports.TokenService
	revocations  TokenRevoker
	tokenTTL     time.Duration
	secureCookie bool
	log          zerolog.Logger
}

func NewAuthHandler(tokens ports.TokenService, revocations TokenRevoker, tokenTTL time.Duration, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		tokens:       tokens,
		revocations:  revocations,
		tokenTTL:     tokenTTL,
		secureCookie: secureCookie,
		log:          log,
	}
}

type emailCheck struct {
	Email string `validate:"required,email"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// IssueToken signs the caller-supplied identity payload and sets it as an
// http-only cookie.
//
// @Summary      Issue an identity token cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Identity payload (email required)"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	claims := domain.Claims{}
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(emailCheck{Email: claims.Email()}); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.TokensIssuedTotal.Inc()
	h.log.Info().Str("email", claims.Email()).Msg("token issued")

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ClearToken clears the token cookie and revokes the presented token until
// its natural expiry. Revocation is best-effort: the cookie is cleared even
// when the revocation list is unreachable.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /logout [post]
func (h *AuthHandler) ClearToken(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.TokenCookie); err == nil && cookie.Value != "" {
		h.revokeRemaining(c, cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) revokeRemaining(c echo.Context, token string) {
	if h.revocations == nil {
		return
	}

	// Only a token that still verifies needs revoking; its exp claim bounds
	// the revocation TTL.
	claims, err := h.tokens.Verify(token)
	if err != nil {
		return
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return
	}

	remaining := time.Until(time.Unix(int64(exp), 0))
	if err := h.revocations.Revoke(c.Request().Context(), token, remaining); err != nil {
		h.log.Warn().Err(err).Msg("failed to revoke token on logout")
	}
}
