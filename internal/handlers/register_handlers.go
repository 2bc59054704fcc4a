package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/bikeshop_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/middleware"
	"github.com/SscSPs/bikeshop_backoffice/internal/platform/config"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthog may be an uninitialized wrapper, in which case events are dropped.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// login and register count separately per client
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	registerLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("register limiter: %w", err)
	}
	registerAuthRoutes(r, services, loginLimiter, registerLimiter)

	setupAPIV1Routes(r, cfg, services, posthog)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCustomerRoutes(v1, services.Customer)
	registerServiceOrderRoutes(v1, services.ServiceOrder, posthog)
	registerTransactionRoutes(v1, services.Transaction)
	registerBillRoutes(v1, services.Bill)
	registerDashboardRoutes(v1, services.Dashboard)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
