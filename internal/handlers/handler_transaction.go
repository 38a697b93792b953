package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	ledger portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ledger portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledger: ledger}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledger)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", middleware.RequireConfirmation(), h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income, expense or transfer. Transfers need a destination account.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	txn, err := h.ledger.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, paginated with an opaque token
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size (1-500)" default(50)
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	txns, nextToken, err := h.ledger.ListTransactions(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		NextToken:    nextToken,
	})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	txn, err := h.ledger.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Merges the provided fields. An empty toAccountID clears the destination.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))
	var req dto.UpdateTransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	txn, err := h.ledger.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction. Deleting an unknown id succeeds.
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Param   confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	if err := h.ledger.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete transaction")
		return
	}

	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}
