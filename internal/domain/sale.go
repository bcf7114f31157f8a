package domain

import "time"

// Sale is an immutable record of a completed stock-reduction transaction.
// TotalPrice snapshots the product price at the moment of sale and is never
// recomputed, even if the product price changes later.
type Sale struct {
	ID         int64     `json:"id" db:"id"`
	ProductID  int64     `json:"product_id" db:"product_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	TotalPrice float64   `json:"total_price" db:"total_price"`
	SoldAt     time.Time `json:"sold_at" db:"sold_at"`
}

// SaleReceipt is returned by a successful sell transaction: the new sale row
// plus the product as it looks after the stock decrement.
type SaleReceipt struct {
	Sale    *Sale    `json:"sale"`
	Product *Product `json:"product"`
}
