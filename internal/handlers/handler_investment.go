package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler serves variable-income positions and fixed-income holdings.
type investmentHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newInvestmentHandler(ledger portssvc.LedgerSvcFacade) *investmentHandler {
	return &investmentHandler{ledger: ledger}
}

// registerInvestmentRoutes registers the /investments and /fixed-income groups.
func registerInvestmentRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newInvestmentHandler(ledger)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/:id", h.getInvestment)
		investments.PUT("/:id", h.updateInvestment)
		investments.DELETE("/:id", middleware.RequireConfirmation(), h.deleteInvestment)
	}

	fixedIncome := rg.Group("/fixed-income")
	{
		fixedIncome.POST("", h.createFixedIncome)
		fixedIncome.GET("", h.listFixedIncome)
		fixedIncome.GET("/:id", h.getFixedIncome)
		fixedIncome.PUT("/:id", h.updateFixedIncome)
		fixedIncome.DELETE("/:id", middleware.RequireConfirmation(), h.deleteFixedIncome)
	}
}

// createInvestment godoc
// @Summary Add a variable-income position
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Position details"
// @Success 201 {object} domain.Investment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create investment"
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	inv, err := h.ledger.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create investment")
		return
	}

	logger.Info("Investment created successfully", slog.String("investment_id", inv.InvestmentID), slog.String("ticker", inv.Ticker))
	c.JSON(http.StatusCreated, inv)
}

// listInvestments godoc
// @Summary List variable-income positions
// @Tags investments
// @Produce  json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investments, err := h.ledger.ListInvestments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list investments")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvestmentsResponse{Investments: investments})
}

// getInvestment godoc
// @Summary Get a variable-income position by ID
// @Tags investments
// @Produce  json
// @Param   id path string true "Investment ID"
// @Success 200 {object} domain.Investment
// @Failure 404 {object} map[string]string "Investment not found"
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("id")))

	inv, err := h.ledger.GetInvestment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve investment")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// updateInvestment godoc
// @Summary Update a variable-income position
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id path string true "Investment ID"
// @Param   investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} domain.Investment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Investment not found"
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("id")))
	var req dto.UpdateInvestmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	inv, err := h.ledger.UpdateInvestment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "update investment")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// deleteInvestment godoc
// @Summary Delete a variable-income position
// @Tags investments
// @Param   id path string true "Investment ID"
// @Param   confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("id")))

	if err := h.ledger.DeleteInvestment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete investment")
		return
	}

	logger.Info("Investment deleted")
	c.Status(http.StatusNoContent)
}

// createFixedIncome godoc
// @Summary Add a fixed-income holding
// @Tags fixed-income
// @Accept  json
// @Produce  json
// @Param   holding body dto.CreateFixedIncomeRequest true "Holding details"
// @Success 201 {object} domain.FixedIncomeInvestment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create fixed income"
// @Router /fixed-income [post]
func (h *investmentHandler) createFixedIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedIncomeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	holding, err := h.ledger.CreateFixedIncome(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create fixed income")
		return
	}

	logger.Info("Fixed income created successfully", slog.String("investment_id", holding.InvestmentID))
	c.JSON(http.StatusCreated, holding)
}

// listFixedIncome godoc
// @Summary List fixed-income holdings
// @Tags fixed-income
// @Produce  json
// @Success 200 {object} dto.ListFixedIncomeResponse
// @Router /fixed-income [get]
func (h *investmentHandler) listFixedIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	holdings, err := h.ledger.ListFixedIncome(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list fixed income")
		return
	}

	c.JSON(http.StatusOK, dto.ListFixedIncomeResponse{FixedIncome: holdings})
}

// getFixedIncome godoc
// @Summary Get a fixed-income holding by ID
// @Tags fixed-income
// @Produce  json
// @Param   id path string true "Investment ID"
// @Success 200 {object} domain.FixedIncomeInvestment
// @Failure 404 {object} map[string]string "Fixed income not found"
// @Router /fixed-income/{id} [get]
func (h *investmentHandler) getFixedIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("id")))

	holding, err := h.ledger.GetFixedIncome(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve fixed income")
		return
	}

	c.JSON(http.StatusOK, holding)
}

// updateFixedIncome godoc
// @Summary Update a fixed-income holding
// @Tags fixed-income
// @Accept  json
// @Produce  json
// @Param   id path string true "Investment ID"
// @Param   holding body dto.UpdateFixedIncomeRequest true "Fields to update"
// @Success 200 {object} domain.FixedIncomeInvestment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Fixed income not found"
// @Router /fixed-income/{id} [put]
func (h *investmentHandler) updateFixedIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("id")))
	var req dto.UpdateFixedIncomeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	holding, err := h.ledger.UpdateFixedIncome(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "update fixed income")
		return
	}

	c.JSON(http.StatusOK, holding)
}

// deleteFixedIncome godoc
// @Summary Delete a fixed-income holding
// @Tags fixed-income
// @Param   id path string true "Investment ID"
// @Param   confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Router /fixed-income/{id} [delete]
func (h *investmentHandler) deleteFixedIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("id")))

	if err := h.ledger.DeleteFixedIncome(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete fixed income")
		return
	}

	logger.Info("Fixed income deleted")
	c.Status(http.StatusNoContent)
}
