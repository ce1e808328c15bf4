package ports

import "github.com/servihub/booking-api/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are stateless: validity is determined entirely by signature and
// expiry at verification time.
type TokenService interface {
	// Issue signs the supplied claims with the process-wide secret and a
	// fixed expiry window.
	Issue(claims domain.Claims) (string, error)
	// Verify checks signature and expiry and returns the decoded claims.
	// Fails with domain.ErrTokenInvalid or domain.ErrTokenExpired.
	Verify(token string) (domain.Claims, error)
}
