package transport

import (
	"net/http"

	"stockroom/internal/middleware"
	"stockroom/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregate metrics view
type DashboardHandler struct {
	reporting service.ReportingService
	logger    *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(reporting service.ReportingService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		reporting: reporting,
		logger:    logger,
	}
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/dashboard", h.Dashboard)
}

// Dashboard handles rendering the aggregate metrics
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reporting.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, dashboard)
}
