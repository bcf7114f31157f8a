// Package report computes dashboard aggregates as pure functions over
// already-loaded products and sales. Nothing here touches storage; the
// reporting service loads the snapshots and calls in.
package report

import (
	"sort"

	"stockroom/internal/domain"
)

// Summary holds the headline dashboard metrics
type Summary struct {
	ProductCount int     `json:"product_count"`
	StockValue   float64 `json:"stock_value"`
	Revenue      float64 `json:"revenue"`
}

// ProductSales pairs a product name with its total units sold
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Summarize computes product count, total stock value and total revenue
func Summarize(products []*domain.Product, sales []*domain.Sale) Summary {
	var stockValue float64
	for _, p := range products {
		stockValue += p.StockValue()
	}

	var revenue float64
	for _, s := range sales {
		revenue += s.TotalPrice
	}

	return Summary{
		ProductCount: len(products),
		StockValue:   domain.RoundCents(stockValue),
		Revenue:      domain.RoundCents(revenue),
	}
}

// StockByProduct maps product name to on-hand quantity for charting
func StockByProduct(products []*domain.Product) map[string]int {
	stock := make(map[string]int, len(products))
	for _, p := range products {
		stock[p.Name] = p.Quantity
	}
	return stock
}

// SalesByProduct sums units sold per product, sorted descending so the first
// entries are the best sellers. Sales whose product has since been deleted
// are skipped: there is no name left to chart them under.
func SalesByProduct(products []*domain.Product, sales []*domain.Sale) []ProductSales {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	totals := make(map[string]int)
	for _, s := range sales {
		name, ok := names[s.ProductID]
		if !ok {
			continue
		}
		totals[name] += s.Quantity
	}

	ranked := make([]ProductSales, 0, len(totals))
	for name, quantity := range totals {
		ranked = append(ranked, ProductSales{Name: name, Quantity: quantity})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

// RecentSales returns the most recent n sales, newest first. The input may be
// in either order; the result is always sorted by sold_at descending.
func RecentSales(sales []*domain.Sale, n int) []*domain.Sale {
	if n <= 0 {
		return []*domain.Sale{}
	}

	sorted := make([]*domain.Sale, len(sales))
	copy(sorted, sales)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].SoldAt.Equal(sorted[j].SoldAt) {
			return sorted[i].SoldAt.After(sorted[j].SoldAt)
		}
		return sorted[i].ID > sorted[j].ID
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
