package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerHealthRoutes(r, services.Health)
	registerExchangeRateRoutes(r, services.ExchangeRate, services.RateFetcher)
}

// registerHealthRoutes exposes the binary readiness probe: 200 when the store
// answers, 503 otherwise.
func registerHealthRoutes(r *gin.Engine, health portssvc.HealthSvc) {
	r.GET("/healthz", func(c *gin.Context) {
		if err := health.Ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
