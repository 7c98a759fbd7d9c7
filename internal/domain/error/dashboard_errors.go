// Package error defines domain-specific errors for the management application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidDayCount is returned when the revenue series day count is not positive.
	ErrInvalidDayCount = errors.New("day count must be positive")

	// ErrInvalidLimit is returned when the recent-transactions limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")
)

// DashboardErrorCode defines error codes for dashboard errors.
type DashboardErrorCode string

const (
	ErrCodeInvalidDayCount DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidLimit    DashboardErrorCode = "DSH-010002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
