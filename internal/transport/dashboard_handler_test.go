package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/domain"
	"stockroom/internal/report"
	"stockroom/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReporting implements service.ReportingService for handler tests
type fakeReporting struct {
	dashboard *service.Dashboard
	err       error
}

func (f *fakeReporting) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	return f.dashboard, f.err
}

func TestDashboardHandler(t *testing.T) {
	reporting := &fakeReporting{dashboard: &service.Dashboard{
		Summary:        report.Summary{ProductCount: 2, StockValue: 140.00, Revenue: 30.00},
		StockByProduct: map[string]int{"Widget": 12, "Gadget": 4},
		BestSellers:    []report.ProductSales{{Name: "Widget", Quantity: 3}},
		RecentSales:    []*domain.Sale{},
	}}

	router := chi.NewRouter()
	NewDashboardHandler(reporting, zap.NewNop()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard service.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, 140.00, dashboard.Summary.StockValue)
	assert.Equal(t, 12, dashboard.StockByProduct["Widget"])
	assert.Equal(t, "Widget", dashboard.BestSellers[0].Name)
}

func TestDashboardHandler_Error(t *testing.T) {
	router := chi.NewRouter()
	NewDashboardHandler(&fakeReporting{err: assert.AnError}, zap.NewNop()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
