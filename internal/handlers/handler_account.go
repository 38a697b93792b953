package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledger    portssvc.LedgerSvcFacade
	dashboard portssvc.DashboardSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ledger portssvc.LedgerSvcFacade, dashboard portssvc.DashboardSvcFacade) *accountHandler {
	return &accountHandler{ledger: ledger, dashboard: dashboard}
}

// registerAccountRoutes registers routes related to accounts. Accounts are never deleted.
func registerAccountRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, dashboard portssvc.DashboardSvcFacade) {
	h := newAccountHandler(ledger, dashboard)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a bank account with an opening balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	account, err := h.ledger.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create account")
		return
	}

	// A new account has no transactions yet.
	account.Balance = account.InitialBalance
	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account with its current balance
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(summary.Accounts)})
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an account and its current balance
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))

	account, err := h.ledger.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve account")
		return
	}
	if !h.fillBalance(c, logger, account) {
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the name, bank or opening balance of an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))
	var req dto.UpdateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	account, err := h.ledger.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "update account")
		return
	}
	if !h.fillBalance(c, logger, account) {
		return
	}

	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) fillBalance(c *gin.Context, logger *slog.Logger, account *domain.Account) bool {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "compute account balance")
		return false
	}
	if balance, ok := summary.AccountBalances[account.AccountID]; ok {
		account.Balance = balance
	} else {
		account.Balance = account.InitialBalance
	}
	return true
}
