package domain

import "errors"

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID indicates a malformed document identifier; raised before
	// any store call is made.
	ErrInvalidID = errors.New("invalid document id")
	// ErrForbidden indicates an authenticated caller asked for data owned by
	// a different identity.
	ErrForbidden = errors.New("forbidden access")

	// ErrTokenMissing indicates no credential was presented.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid indicates a malformed token or bad signature.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired indicates a well-formed token past its expiry. It wraps
	// ErrTokenInvalid so callers matching on the broad kind still catch it.
	ErrTokenExpired = &tokenExpiredError{}
)

type tokenExpiredError struct{}

func (e *tokenExpiredError) Error() string { return "token expired" }

func (e *tokenExpiredError) Unwrap() error { return ErrTokenInvalid }
