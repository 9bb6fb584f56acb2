package shared

import "errors"

var (
	// ErrInvalidInput indicates malformed or missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenMissing occurs when no bearer token was supplied.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid occurs when the token signature or claims do not verify.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired occurs when the token is past its embedded expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrNotFound indicates resource not found or not owned by the caller.
	ErrNotFound = errors.New("not found")
)

// UserSafeMessage returns a message suitable for API responses. Unknown
// errors collapse to a generic message so internal detail never leaks.
func UserSafeMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid input"
	case errors.Is(err, ErrDuplicateEmail):
		return "email already registered"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, ErrTokenMissing):
		return "authentication required"
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
		return "invalid or expired token"
	case errors.Is(err, ErrNotFound):
		return "not found"
	default:
		return "internal server error"
	}
}
