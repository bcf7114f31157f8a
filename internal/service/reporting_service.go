package service

import (
	"context"
	"fmt"

	"stockroom/internal/domain"
	"stockroom/internal/report"
	"stockroom/internal/repository"
)

// RecentSalesLimit is the number of sales shown on the dashboard
const RecentSalesLimit = 10

// Dashboard bundles everything the dashboard view renders
type Dashboard struct {
	Summary        report.Summary        `json:"summary"`
	StockByProduct map[string]int        `json:"stock_by_product"`
	BestSellers    []report.ProductSales `json:"best_sellers"`
	RecentSales    []*domain.Sale        `json:"recent_sales"`
}

// ReportingService assembles dashboard aggregates from repository snapshots.
// Metrics are recomputed on every call; with single-digit-thousands of rows a
// cache would buy nothing.
type ReportingService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type reportingService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewReportingService creates a new instance of ReportingService
func NewReportingService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) ReportingService {
	return &reportingService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// Dashboard loads current products and sales and derives the aggregate views
func (s *reportingService) Dashboard(ctx context.Context) (*Dashboard, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for dashboard: %w", err)
	}

	sales, err := s.saleRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for dashboard: %w", err)
	}

	return &Dashboard{
		Summary:        report.Summarize(products, sales),
		StockByProduct: report.StockByProduct(products),
		BestSellers:    report.SalesByProduct(products, sales),
		RecentSales:    report.RecentSales(sales, RecentSalesLimit),
	}, nil
}
