package repository

import (
	"context"
	"fmt"

	"stockroom/internal/domain"
)

// SaleRepository defines the interface for sale data access. Sales are
// append-only: there is no update or delete.
type SaleRepository interface {
	Insert(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context, descending bool) ([]*domain.Sale, error)
	ListByProduct(ctx context.Context, productID int64) ([]*domain.Sale, error)
	CountByProduct(ctx context.Context, productID int64) (int, error)
}

type saleRepository struct {
	db DBTX
}

// NewSaleRepository creates a new instance of SaleRepository
func NewSaleRepository(db DBTX) SaleRepository {
	return &saleRepository{db: db}
}

// Insert appends a sale row and fills in the system-assigned id and timestamp
func (r *saleRepository) Insert(ctx context.Context, sale *domain.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity, total_price, sold_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, sold_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		sale.ProductID,
		sale.Quantity,
		sale.TotalPrice,
	).Scan(&sale.ID, &sale.SoldAt)

	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	return nil
}

// List retrieves all sales ordered by sold_at
func (r *saleRepository) List(ctx context.Context, descending bool) ([]*domain.Sale, error) {
	order := "ASC"
	if descending {
		order = "DESC"
	}

	// Tie-break on id so ordering is deterministic for same-instant sales.
	query := fmt.Sprintf(`
		SELECT id, product_id, quantity, total_price, sold_at
		FROM sales
		ORDER BY sold_at %s, id %s
	`, order, order)

	return r.querySales(ctx, query)
}

// ListByProduct retrieves all sales for one product, oldest first
func (r *saleRepository) ListByProduct(ctx context.Context, productID int64) ([]*domain.Sale, error) {
	query := `
		SELECT id, product_id, quantity, total_price, sold_at
		FROM sales
		WHERE product_id = $1
		ORDER BY sold_at ASC, id ASC
	`

	return r.querySales(ctx, query, productID)
}

// CountByProduct returns the number of sale rows referencing a product
func (r *saleRepository) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sales WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return count, nil
}

func (r *saleRepository) querySales(ctx context.Context, query string, args ...any) ([]*domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := []*domain.Sale{}
	for rows.Next() {
		sale := &domain.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.ProductID,
			&sale.Quantity,
			&sale.TotalPrice,
			&sale.SoldAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}
