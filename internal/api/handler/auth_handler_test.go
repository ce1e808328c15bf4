package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/servihub/booking-api/internal/api/middleware"
	"github.com/servihub/booking-api/internal/core/domain"
)

type stubTokenService struct {
	issueFn  func(claims domain.Claims) (string, error)
	verifyFn func(token string) (domain.Claims, error)
}

func (s *stubTokenService) Issue(claims domain.Claims) (string, error) {
	return s.issueFn(claims)
}

func (s *stubTokenService) Verify(token string) (domain.Claims, error) {
	return s.verifyFn(token)
}

type stubRevoker struct {
	token string
	ttl   time.Duration
	calls int
}

func (s *stubRevoker) Revoke(_ context.Context, token string, ttl time.Duration) error {
	s.token = token
	s.ttl = ttl
	s.calls++
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.TokenCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_IssueToken(t *testing.T) {
	e := newEcho()
	tokens := &stubTokenService{
		issueFn: func(claims domain.Claims) (string, error) {
			if claims.Email() != "alice@example.com" {
				t.Fatalf("unexpected claims: %v", claims)
			}
			if claims["name"] != "Alice" {
				t.Fatalf("extra claim not forwarded: %v", claims)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(tokens, &stubRevoker{}, time.Hour, false, zerolog.Nop())

	body := strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.IssueToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success true, got %v", resp)
	}

	cookie := tokenCookie(rec)
	if cookie == nil {
		t.Fatalf("token cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %s", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("token cookie must be http-only")
	}
}

func TestAuthHandler_IssueToken_MissingEmail(t *testing.T) {
	e := newEcho()
	tokens := &stubTokenService{
		issueFn: func(domain.Claims) (string, error) {
			t.Fatalf("issue must not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(tokens, &stubRevoker{}, time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.IssueToken(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_IssueToken_InvalidPayload(t *testing.T) {
	e := newEcho()
	tokens := &stubTokenService{
		issueFn: func(domain.Claims) (string, error) {
			t.Fatalf("issue must not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(tokens, &stubRevoker{}, time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.IssueToken(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_ClearToken_RevokesAndClears(t *testing.T) {
	e := newEcho()
	exp := time.Now().Add(30 * time.Minute).Unix()
	tokens := &stubTokenService{
		verifyFn: func(token string) (domain.Claims, error) {
			return domain.Claims{"email": "alice@example.com", "exp": float64(exp)}, nil
		},
	}
	revoker := &stubRevoker{}
	h := NewAuthHandler(tokens, revoker, time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: "live-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ClearToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if revoker.calls != 1 || revoker.token != "live-token" {
		t.Fatalf("expected token to be revoked, got %+v", revoker)
	}
	if revoker.ttl <= 0 || revoker.ttl > 30*time.Minute {
		t.Fatalf("revocation ttl should match remaining validity, got %v", revoker.ttl)
	}

	cookie := tokenCookie(rec)
	if cookie == nil {
		t.Fatalf("clearing cookie not set")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_ClearToken_NoCookie(t *testing.T) {
	e := newEcho()
	revoker := &stubRevoker{}
	h := NewAuthHandler(&stubTokenService{}, revoker, time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ClearToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoker.calls != 0 {
		t.Fatalf("nothing to revoke without a cookie")
	}
}

func TestAuthHandler_ClearToken_ExpiredTokenNotRevoked(t *testing.T) {
	e := newEcho()
	tokens := &stubTokenService{
		verifyFn: func(string) (domain.Claims, error) {
			return nil, domain.ErrTokenExpired
		},
	}
	revoker := &stubRevoker{}
	h := NewAuthHandler(tokens, revoker, time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: "stale-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ClearToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoker.calls != 0 {
		t.Fatalf("expired token must not be added to the revocation list")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
