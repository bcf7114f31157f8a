package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockroom/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStock implements service.StockService for handler tests
type fakeStock struct {
	receipt *domain.SaleReceipt
	product *domain.Product
	sales   []*domain.Sale
	err     error

	lastDescending bool
}

func (f *fakeStock) Sell(ctx context.Context, productID int64, quantity int) (*domain.SaleReceipt, error) {
	return f.receipt, f.err
}

func (f *fakeStock) Restock(ctx context.Context, productID int64, quantity int) (*domain.Product, error) {
	return f.product, f.err
}

func (f *fakeStock) ListSales(ctx context.Context, descending bool) ([]*domain.Sale, error) {
	f.lastDescending = descending
	return f.sales, f.err
}

func newStockRouter(stock *fakeStock) *chi.Mux {
	router := chi.NewRouter()
	NewStockHandler(stock, zap.NewNop()).RegisterRoutes(router)
	return router
}

func TestStockHandler_Sell(t *testing.T) {
	stock := &fakeStock{receipt: &domain.SaleReceipt{
		Sale:    &domain.Sale{ID: 7, ProductID: 1, Quantity: 3, TotalPrice: 30.00, SoldAt: time.Now()},
		Product: &domain.Product{ID: 1, Name: "Widget", Price: 10.00, Quantity: 2},
	}}
	router := newStockRouter(stock)

	body := bytes.NewBufferString(`{"quantity":3}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/1/sell", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var receipt domain.SaleReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, 30.00, receipt.Sale.TotalPrice)
	assert.Equal(t, 2, receipt.Product.Quantity)
}

func TestStockHandler_SellInsufficientStock(t *testing.T) {
	stock := &fakeStock{err: &domain.InsufficientStockError{ProductID: 1, Requested: 5, Available: 2}}
	router := newStockRouter(stock)

	body := bytes.NewBufferString(`{"quantity":5}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/1/sell", body))

	require.Equal(t, http.StatusConflict, rec.Code)

	// The message must report the actual remaining quantity
	assert.Contains(t, rec.Body.String(), "only 2 available")
}

func TestStockHandler_SellValidation(t *testing.T) {
	router := newStockRouter(&fakeStock{})

	for _, body := range []string{`{"quantity":0}`, `{"quantity":-1}`, `{}`, `not json`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/1/sell", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestStockHandler_SellUnknownProduct(t *testing.T) {
	router := newStockRouter(&fakeStock{err: domain.ErrProductNotFound})

	body := bytes.NewBufferString(`{"quantity":1}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/42/sell", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStockHandler_Restock(t *testing.T) {
	stock := &fakeStock{product: &domain.Product{ID: 1, Name: "Widget", Price: 10.00, Quantity: 12}}
	router := newStockRouter(stock)

	body := bytes.NewBufferString(`{"quantity":10}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/1/restock", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, 12, product.Quantity)
}

func TestStockHandler_ListSalesOrder(t *testing.T) {
	stock := &fakeStock{sales: []*domain.Sale{}}
	router := newStockRouter(stock)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stock.lastDescending, "default order is newest first")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales?order=asc", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, stock.lastDescending)
}
