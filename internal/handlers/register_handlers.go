package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	RegisterAPIV1Routes(r.Group("/api/v1"), cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// RegisterAPIV1Routes delegates route registration of the /api/v1 group to the entity handlers.
func RegisterAPIV1Routes(
	v1 *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	registerAccountRoutes(v1, services.Ledger, services.Dashboard)
	registerTransactionRoutes(v1, services.Ledger)
	registerInvestmentRoutes(v1, services.Ledger)
	registerCategoryRoutes(v1, services.Ledger)
	registerDashboardRoutes(v1, services.Dashboard, cfg.DisplayCurrency)
	registerMarketRoutes(v1, services.Market)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
