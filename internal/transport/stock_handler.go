package transport

import (
	"net/http"

	"stockroom/internal/middleware"
	"stockroom/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StockRequest represents the sell/restock payload
type StockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// StockHandler handles HTTP requests for stock transactions and the sales log
type StockHandler struct {
	stock  service.StockService
	logger *zap.Logger
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stock service.StockService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		stock:  stock,
		logger: logger,
	}
}

// RegisterRoutes registers sell, restock and sales log routes
func (h *StockHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/products/{id}/sell", h.Sell)
	r.Post("/api/products/{id}/restock", h.Restock)
	r.Get("/api/sales", h.ListSales)
}

// Sell handles a sale transaction against a product's stock
func (h *StockHandler) Sell(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req StockRequest
	if !decodeStockRequest(w, r, &req, h.logger) {
		return
	}

	receipt, err := h.stock.Sell(r.Context(), id, req.Quantity)
	if err != nil {
		h.logger.Debug("Sell failed",
			zap.Int64("product_id", id),
			zap.Int("quantity", req.Quantity),
			zap.Error(err),
		)
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Sale recorded",
		zap.Int64("sale_id", receipt.Sale.ID),
		zap.Int64("product_id", id),
		zap.Int("quantity", receipt.Sale.Quantity),
		zap.Float64("total_price", receipt.Sale.TotalPrice),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, receipt)
}

// Restock handles increasing a product's on-hand quantity
func (h *StockHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req StockRequest
	if !decodeStockRequest(w, r, &req, h.logger) {
		return
	}

	product, err := h.stock.Restock(r.Context(), id, req.Quantity)
	if err != nil {
		h.logger.Debug("Restock failed",
			zap.Int64("product_id", id),
			zap.Int("quantity", req.Quantity),
			zap.Error(err),
		)
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Product restocked",
		zap.Int64("product_id", id),
		zap.Int("quantity", req.Quantity),
		zap.Int("on_hand", product.Quantity),
	)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListSales handles reading the sales log, newest first unless order=asc
func (h *StockHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	descending := r.URL.Query().Get("order") != "asc"

	sales, err := h.stock.ListSales(r.Context(), descending)
	if err != nil {
		h.logger.Error("Failed to list sales", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, sales)
}

func decodeStockRequest(w http.ResponseWriter, r *http.Request, req *StockRequest, logger *zap.Logger) bool {
	if err := middleware.DecodeAndValidate(r, req); err != nil {
		logger.Debug("Stock request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
