package domain

import "errors"

// Business errors shared across services. The webapi layer maps these to
// HTTP status codes; services only wrap and return them.
var (
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is deliberately undifferentiated: callers must
	// not learn whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized indicates a missing or invalid bearer token.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden indicates a valid token with insufficient role or ownership.
	ErrForbidden = errors.New("permission denied")

	// ErrAdminRequired indicates an admin-only login attempt by a non-admin.
	ErrAdminRequired = errors.New("admin access required")

	// ErrInvalidOrExpiredOtp covers a missing, mismatched or stale OTP code.
	ErrInvalidOrExpiredOtp = errors.New("invalid or expired OTP")

	// ErrEmailAlreadyVerified rejects OTP generation for verified accounts.
	ErrEmailAlreadyVerified = errors.New("email already verified")

	// ErrNotFound indicates an absent or soft-deleted entity.
	ErrNotFound = errors.New("not found")

	// ErrEmailExists rejects registration with a taken email address.
	ErrEmailExists = errors.New("email already registered")
)

// Token validation errors. Expiry is the only lazy invalidation mechanism,
// so the issuer distinguishes it from structural failures.
var (
	ErrExpiredToken   = errors.New("token has expired")
	ErrMalformedToken = errors.New("invalid token")
)
