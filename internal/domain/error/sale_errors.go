// Package error defines domain-specific errors for the management application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrEmptySale is returned when a sale is created with no line items.
	ErrEmptySale = errors.New("sale must contain at least one item")

	// ErrInvalidQuantity is returned when a line item quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInsufficientStock is returned when a line item quantity exceeds the
	// product's available stock. Oversell is rejected inside the operation,
	// never left to the caller.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// SaleErrorCode defines error codes for sale errors.
type SaleErrorCode string

const (
	ErrCodeSaleNotFound      SaleErrorCode = "SAL-010001"
	ErrCodeEmptySale         SaleErrorCode = "SAL-010002"
	ErrCodeInvalidQuantity   SaleErrorCode = "SAL-010003"
	ErrCodeInsufficientStock SaleErrorCode = "SAL-010004"
	ErrCodeSaleProductGone   SaleErrorCode = "SAL-010005"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
