package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrMissingProduct indicates an add-to-cart input without a usable
	// product identity or name.
	ErrMissingProduct = errors.New("product id and name required")
	// ErrInvalidQuantity indicates a zero or negative explicit quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
