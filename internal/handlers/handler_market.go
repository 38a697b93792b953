package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type marketHandler struct {
	market portssvc.MarketSvcFacade
}

func registerMarketRoutes(rg *gin.RouterGroup, market portssvc.MarketSvcFacade) {
	h := &marketHandler{market: market}

	group := rg.Group("/market")
	{
		group.GET("/prices", h.getPrices)
		group.GET("/top-movers", h.getTopMovers)
	}
}

// getPrices godoc
// @Summary Cached quotes
// @Description Latest quotes for the tickers currently held, with the cache version
// @Tags market
// @Produce  json
// @Success 200 {object} dto.MarketPricesResponse
// @Router /market/prices [get]
func (h *marketHandler) getPrices(c *gin.Context) {
	prices, version := h.market.Prices()
	c.JSON(http.StatusOK, dto.MarketPricesResponse{Version: version, Prices: prices})
}

// getTopMovers godoc
// @Summary Top movers
// @Description Reference quotes ranked by percentage change
// @Tags market
// @Produce  json
// @Param   limit query int false "Maximum number of movers (1-100)"
// @Success 200 {object} dto.TopMoversResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to load top movers"
// @Router /market/top-movers [get]
func (h *marketHandler) getTopMovers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopMoversParams
	if !bindQuery(c, logger, &params) {
		return
	}

	movers, err := h.market.TopMovers(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "load top movers")
		return
	}

	logger.Debug("Top movers served", slog.Int("count", len(movers)))
	c.JSON(http.StatusOK, dto.TopMoversResponse{Movers: movers})
}
