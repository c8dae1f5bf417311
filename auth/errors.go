package auth

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrDuplicateUser is returned when a signup reuses an existing email
var ErrDuplicateUser = errors.New("User already exists", errors.CategoryConflict).
	WithCode(errors.CodeBadRequest).
	WithTextCode("DUPLICATE_USER")

// ErrInvalidCredentials covers both unknown email and wrong password so a
// caller cannot probe which accounts exist
var ErrInvalidCredentials = errors.New("Invalid credentials", errors.CategoryAuth).
	WithCode(errors.CodeBadRequest).
	WithTextCode("INVALID_CREDENTIALS")

// ErrAccessDenied is returned when a protected route gets no token at all
var ErrAccessDenied = errors.New("Access Denied", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("ACCESS_DENIED")

// ErrTokenExpired is the validation error for expired session tokens
var ErrTokenExpired = errors.New("Invalid Token", errors.CategoryAuth).
	WithCode(errors.CodeBadRequest).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed covers forged, tampered, or otherwise undecodable tokens
var ErrTokenMalformed = errors.New("Invalid Token", errors.CategoryAuth).
	WithCode(errors.CodeBadRequest).
	WithTextCode("TOKEN_MALFORMED")

// ErrNoEmptyString rejects empty passwords before they reach bcrypt
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode("EMPTY_PASSWORD")

// ErrMismatchedHashAndPassword is the internal mismatch marker; the HTTP
// surface translates it to ErrInvalidCredentials
var ErrMismatchedHashAndPassword = errors.New("password hash mismatch", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("HASH_MISMATCH")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsUniqueConstraintError reports whether the store rejected a write because
// of the unique email index. The sqlite driver only exposes this as text.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint violation") ||
		strings.Contains(msg, "duplicate key value")
}
