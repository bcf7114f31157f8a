package domain

import (
	"math"
	"time"
)

// Product represents a stocked item in the catalog
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Quantity    int       `json:"quantity" db:"quantity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// StockValue returns price times on-hand quantity, rounded to cents
func (p *Product) StockValue() float64 {
	return RoundCents(p.Price * float64(p.Quantity))
}

// RoundCents rounds a monetary amount to two decimal places
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
