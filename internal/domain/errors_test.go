package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientStockError_ReportsRemaining(t *testing.T) {
	err := &InsufficientStockError{ProductID: 3, Requested: 5, Available: 2}

	assert.Contains(t, err.Error(), "requested 5")
	assert.Contains(t, err.Error(), "only 2 available")
}

func TestIsInsufficientStock(t *testing.T) {
	plain := &InsufficientStockError{ProductID: 1, Requested: 2, Available: 0}
	wrapped := fmt.Errorf("sell failed: %w", plain)

	assert.True(t, IsInsufficientStock(plain))
	assert.True(t, IsInsufficientStock(wrapped))
	assert.False(t, IsInsufficientStock(errors.New("something else")))
	assert.False(t, IsInsufficientStock(nil))
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.004, 10.00},
		{10.006, 10.01},
		{0.1 + 0.2, 0.30},
		{3 * 10.00, 30.00},
		{-2.345, -2.35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundCents(tt.in), "RoundCents(%v)", tt.in)
	}
}

func TestProductStockValue(t *testing.T) {
	p := &Product{Price: 10.00, Quantity: 12}
	assert.Equal(t, 120.00, p.StockValue())

	empty := &Product{Price: 9.99, Quantity: 0}
	assert.Equal(t, 0.00, empty.StockValue())
}
