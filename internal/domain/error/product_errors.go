// Package error defines domain-specific errors for the management application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameRequired is returned when a product name is empty or blank.
	ErrProductNameRequired = errors.New("product name required")

	// ErrNegativePrice is returned when a cost or sale price is negative.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrNegativeMinStock is returned when the minimum-stock threshold is negative.
	ErrNegativeMinStock = errors.New("minimum stock must not be negative")
)

// ProductErrorCode defines error codes for product errors.
type ProductErrorCode string

const (
	ErrCodeProductNotFound     ProductErrorCode = "PRD-010001"
	ErrCodeProductNameRequired ProductErrorCode = "PRD-010002"
	ErrCodeNegativePrice       ProductErrorCode = "PRD-010003"
	ErrCodeNegativeMinStock    ProductErrorCode = "PRD-010004"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
