package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the derived, read-only views.
type dashboardHandler struct {
	dashboard portssvc.DashboardSvcFacade
	currency  string
}

func newDashboardHandler(dashboard portssvc.DashboardSvcFacade, currency string) *dashboardHandler {
	return &dashboardHandler{dashboard: dashboard, currency: currency}
}

// registerDashboardRoutes registers the /dashboard group. Formatted figures use currency.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboard portssvc.DashboardSvcFacade, currency string) {
	h := newDashboardHandler(dashboard, currency)

	group := rg.Group("/dashboard")
	{
		group.GET("/summary", h.getSummary)
		group.GET("/monthly", h.getMonthlyOverview)
		group.GET("/cashflow", h.getCashFlow)
		group.GET("/portfolio", h.getPortfolio)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Account balances, total balance and the portfolio valued at the latest prices
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary, h.currency))
}

// getMonthlyOverview godoc
// @Summary Month-to-date overview
// @Description Income, expense, savings rate, spending by category and the daily series
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.MonthlyOverviewResponse
// @Failure 500 {object} map[string]string "Failed to build monthly overview"
// @Router /dashboard/monthly [get]
func (h *dashboardHandler) getMonthlyOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.dashboard.MonthlyOverview(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "build monthly overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyOverviewResponse(overview, h.currency))
}

// getCashFlow godoc
// @Summary Cash flow by day
// @Description Transactions grouped by day, newest first, with the closing total of each day
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.CashFlowResponse
// @Failure 500 {object} map[string]string "Failed to build cash flow"
// @Router /dashboard/cashflow [get]
func (h *dashboardHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	days, err := h.dashboard.CashFlow(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "build cash flow")
		return
	}

	c.JSON(http.StatusOK, dto.CashFlowResponse{Days: days})
}

// getPortfolio godoc
// @Summary Grouped portfolio
// @Description Holdings split into domestic, international, crypto and fixed income
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.PortfolioResponse
// @Failure 500 {object} map[string]string "Failed to build portfolio"
// @Router /dashboard/portfolio [get]
func (h *dashboardHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.dashboard.Portfolio(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "build portfolio")
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioResponse(view, h.currency))
}
