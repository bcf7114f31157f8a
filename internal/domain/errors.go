package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product with this name already exists")
	ErrDuplicateCode   = errors.New("product with this code already exists")
	ErrProductHasSales = errors.New("product has recorded sales and cannot be deleted")
	ErrEmptyName       = errors.New("product name must not be empty")
	ErrInvalidPrice    = errors.New("product price must be greater than zero")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrNegativeStock   = errors.New("stock quantity must not be negative")
)

// InsufficientStockError is returned when a sale requests more units than the
// product has on hand. Available carries the actual remaining quantity so the
// caller can report it.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, only %d available",
		e.ProductID, e.Requested, e.Available)
}

// IsInsufficientStock reports whether err wraps an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
