package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
	"github.com/SscSPs/statement_ingestion/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	uploadLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to create upload rate limiter: %w", err)
	}

	setupAPIV1Routes(r, cfg, services, middleware.RateLimit(uploadLimiter))
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	uploadLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", middleware.UserIdentityMiddleware())
	account := v1.Group("/accounts/:accountID")

	registerImportRoutes(account, services.Import, cfg.MaxUploadBytes, uploadLimit)
	registerMappingRoutes(account, services.Mapping)
	registerReconciliationRoutes(account, services.Duplicate, services.Reversal)
}
