package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newCategoryHandler(ledger portssvc.LedgerSvcFacade) *categoryHandler {
	return &categoryHandler{ledger: ledger}
}

func registerCategoryRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newCategoryHandler(ledger)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", middleware.RequireConfirmation(), h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	category, err := h.ledger.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create category")
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, category)
}

// listCategories godoc
// @Summary List categories
// @Description Lists categories, optionally only those of one type
// @Tags categories
// @Produce  json
// @Param   type query string false "INCOME or EXPENSE"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCategoriesParams
	if !bindQuery(c, logger, &params) {
		return
	}

	categories, err := h.ledger.ListCategories(c.Request.Context(), params.Type)
	if err != nil {
		respondError(c, logger, err, "list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: categories})
}

// updateCategory godoc
// @Summary Update a category
// @Description Renames or retypes a category. Existing transactions keep the old name.
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", c.Param("id")))
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	category, err := h.ledger.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// deleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param   id path string true "Category ID"
// @Param   confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", c.Param("id")))

	if err := h.ledger.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
