// Package error defines domain-specific errors for the management application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when no user matches the login email.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole is returned when the requested role is not a known role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrNoActiveSession is returned when the session marker slot is empty.
	ErrNoActiveSession = errors.New("no active session")

	// ErrMissingToken is returned when a request lacks an access token.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when an access token fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidRole        AuthErrorCode = "AUTH-010004"
	ErrCodeNoActiveSession    AuthErrorCode = "AUTH-020001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020003"
	ErrCodeForbidden          AuthErrorCode = "AUTH-020004"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
