package service

import (
	"context"
	"database/sql"
	"fmt"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
)

// StockService is the stock transaction engine. Sell and Restock are each a
// single atomic state transition guarded by the invariant that on-hand
// quantity never goes negative.
type StockService interface {
	Sell(ctx context.Context, productID int64, quantity int) (*domain.SaleReceipt, error)
	Restock(ctx context.Context, productID int64, quantity int) (*domain.Product, error)
	ListSales(ctx context.Context, descending bool) ([]*domain.Sale, error)
}

type stockService struct {
	db *sql.DB
}

// NewStockService creates a new instance of StockService. It holds the pool,
// not a session: every operation opens its own transaction and releases it.
func NewStockService(db *sql.DB) StockService {
	return &stockService{db: db}
}

// Sell atomically decrements stock and appends a sale row with the price
// snapshotted inside the same transaction. Precondition failures are detected
// before any write; a failed commit leaves no partial state behind.
func (s *stockService) Sell(ctx context.Context, productID int64, quantity int) (*domain.SaleReceipt, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin sell transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	productRepo := repository.NewProductRepository(tx)
	saleRepo := repository.NewSaleRepository(tx)

	// Lock the row so the check-and-decrement serializes against concurrent
	// sales of the same product.
	product, err := productRepo.FindByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Quantity < quantity {
		return nil, &domain.InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: product.Quantity,
		}
	}

	product.Quantity -= quantity
	if err := productRepo.SetQuantity(ctx, product.ID, product.Quantity); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ProductID:  product.ID,
		Quantity:   quantity,
		TotalPrice: domain.RoundCents(float64(quantity) * product.Price),
	}
	if err := saleRepo.Insert(ctx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sell transaction: %w", err)
	}

	return &domain.SaleReceipt{Sale: sale, Product: product}, nil
}

// Restock atomically increments a product's on-hand quantity
func (s *stockService) Restock(ctx context.Context, productID int64, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin restock transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	productRepo := repository.NewProductRepository(tx)

	product, err := productRepo.FindByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Quantity += quantity
	if err := productRepo.SetQuantity(ctx, product.ID, product.Quantity); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit restock transaction: %w", err)
	}

	return product, nil
}

// ListSales returns the sales log ordered by sale time
func (s *stockService) ListSales(ctx context.Context, descending bool) ([]*domain.Sale, error) {
	return repository.NewSaleRepository(s.db).List(ctx, descending)
}
