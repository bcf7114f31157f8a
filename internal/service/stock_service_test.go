package service

import (
	"context"
	"errors"
	"testing"

	"stockroom/internal/domain"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

func TestStockService_SellScenario(t *testing.T) {
	// Product{price=10.00, quantity=5}: sell 3 -> 2 remain, one sale of 30.00;
	// selling 5 more fails; restocking 10 brings the quantity to 12.
	stock := NewStockService(testDB)
	productRepo := repository.NewProductRepository(testDB)
	saleRepo := repository.NewSaleRepository(testDB)
	ctx := context.Background()

	widget := mustAddProduct(t, uniqueName("Widget"), 10.00, 5)

	receipt, err := stock.Sell(ctx, widget.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Product.Quantity)
	assert.Equal(t, 3, receipt.Sale.Quantity)
	assert.Equal(t, 30.00, receipt.Sale.TotalPrice)

	stored, err := productRepo.FindByID(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)

	sales, err := saleRepo.ListByProduct(ctx, widget.ID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 30.00, sales[0].TotalPrice)

	// Only 2 remain, so selling 5 must fail and leave everything untouched
	_, err = stock.Sell(ctx, widget.ID, 5)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	stored, err = productRepo.FindByID(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)

	sales, err = saleRepo.ListByProduct(ctx, widget.ID)
	require.NoError(t, err)
	assert.Len(t, sales, 1, "failed sale must not append a sale row")

	restocked, err := stock.Restock(ctx, widget.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, restocked.Quantity)
}

func TestStockService_SellInvalidQuantity(t *testing.T) {
	stock := NewStockService(testDB)
	ctx := context.Background()

	product := mustAddProduct(t, uniqueName("Strict"), 5.00, 10)

	for _, quantity := range []int{0, -1, -100} {
		_, err := stock.Sell(ctx, product.ID, quantity)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity %d", quantity)
	}
}

func TestStockService_SellUnknownProduct(t *testing.T) {
	stock := NewStockService(testDB)

	_, err := stock.Sell(context.Background(), 999999999, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestStockService_SellExactRemainingStock(t *testing.T) {
	stock := NewStockService(testDB)
	productRepo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	product := mustAddProduct(t, uniqueName("Exact"), 4.00, 4)

	receipt, err := stock.Sell(ctx, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, receipt.Product.Quantity)

	stored, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Quantity)

	// Nothing left: the next sale of any size must fail
	_, err = stock.Sell(ctx, product.ID, 1)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
}

func TestStockService_TotalPriceSnapshotsCurrentPrice(t *testing.T) {
	stock := NewStockService(testDB)
	catalog := NewCatalogService(repository.NewProductRepository(testDB))
	saleRepo := repository.NewSaleRepository(testDB)
	ctx := context.Background()

	product := mustAddProduct(t, uniqueName("Snapshot"), 10.00, 10)

	receipt, err := stock.Sell(ctx, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 20.00, receipt.Sale.TotalPrice)

	// Raising the price later must not rewrite the historical sale
	_, err = catalog.UpdateProduct(ctx, product.ID, product.Name, product.Description, 99.00, receipt.Product.Quantity)
	require.NoError(t, err)

	sales, err := saleRepo.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 20.00, sales[0].TotalPrice)

	// A new sale snapshots the new price
	receipt, err = stock.Sell(ctx, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 99.00, receipt.Sale.TotalPrice)
}

func TestStockService_RestockThenSellRoundTrip(t *testing.T) {
	stock := NewStockService(testDB)
	productRepo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	product := mustAddProduct(t, uniqueName("RoundTrip"), 7.50, 6)

	_, err := stock.Restock(ctx, product.ID, 5)
	require.NoError(t, err)

	_, err = stock.Sell(ctx, product.ID, 5)
	require.NoError(t, err)

	stored, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Quantity, "restock then sell of equal quantity must return to the original value")
}

func TestStockService_RestockInvalidQuantity(t *testing.T) {
	stock := NewStockService(testDB)
	ctx := context.Background()

	product := mustAddProduct(t, uniqueName("NoFreebies"), 1.00, 1)

	_, err := stock.Restock(ctx, product.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = stock.Restock(ctx, product.ID, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestStockService_RestockUnknownProduct(t *testing.T) {
	stock := NewStockService(testDB)

	_, err := stock.Restock(context.Background(), 999999999, 5)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound))
}

func TestStockService_ListSales(t *testing.T) {
	stock := NewStockService(testDB)
	ctx := context.Background()

	product := mustAddProduct(t, uniqueName("Logged"), 3.00, 50)

	for i := 0; i < 3; i++ {
		_, err := stock.Sell(ctx, product.ID, 1)
		require.NoError(t, err)
	}

	sales, err := stock.ListSales(ctx, true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(sales), 3)

	for i := 1; i < len(sales); i++ {
		assert.False(t, sales[i-1].SoldAt.Before(sales[i].SoldAt),
			"sales log must be ordered by sold_at descending")
	}
}
