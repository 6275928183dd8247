package handlers

import (
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/middleware"
	"github.com/caissebox/caissebox/internal/platform/config"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	reg *schema.Registry,
	services *portssvc.ServiceProvider,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, reg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	reg *schema.Registry,
	services *portssvc.ServiceProvider,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerPeriodRoutes(v1, services.PeriodSvc)
	registerCategoryRoutes(v1, "/income-categories", services.IncomeCatSvc)
	registerCategoryRoutes(v1, "/expense-categories", services.ExpenseCatSvc)
	registerTransactionRoutes(v1, "/incomes", services.IncomeSvc)
	registerTransactionRoutes(v1, "/expenses", services.ExpenseSvc)
	registerReportingRoutes(v1, services.ReportingSvc, services.PeriodSvc)
	registerFormRoutes(v1, reg, services)
	registerTableRoutes(v1, reg, services)
}
