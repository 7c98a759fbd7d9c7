// Package error defines domain-specific errors for the management application.
package error

import "errors"

// Purchase domain errors.
var (
	// ErrPurchaseNotFound is returned when a purchase is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrEmptyPurchase is returned when a purchase is created with no line items.
	ErrEmptyPurchase = errors.New("purchase must contain at least one item")

	// ErrSupplierRequired is returned when the supplier name is empty or blank.
	ErrSupplierRequired = errors.New("supplier required")
)

// PurchaseErrorCode defines error codes for purchase errors.
type PurchaseErrorCode string

const (
	ErrCodePurchaseNotFound    PurchaseErrorCode = "PUR-010001"
	ErrCodeEmptyPurchase       PurchaseErrorCode = "PUR-010002"
	ErrCodeSupplierRequired    PurchaseErrorCode = "PUR-010003"
	ErrCodePurchaseQuantity    PurchaseErrorCode = "PUR-010004"
	ErrCodePurchaseProductGone PurchaseErrorCode = "PUR-010005"
)

// PurchaseError represents a purchase error with code and message.
type PurchaseError struct {
	Code    PurchaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PurchaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// NewPurchaseError creates a new PurchaseError with the given code and message.
func NewPurchaseError(code PurchaseErrorCode, message string, err error) *PurchaseError {
	return &PurchaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
