package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/interfaces/http/handlers"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

// SystemRouteConfig holds dependencies for unauthenticated system routes.
type SystemRouteConfig struct {
	HealthHandler *handlers.HealthHandler
	// MetricsHandler is nil when metrics are disabled.
	MetricsHandler http.Handler
	MetricsPath    string
}

// SetupSystemRoutes configures the root redirect, health and metrics endpoints.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, constants.RouteLogin)
	})

	engine.GET("/health", cfg.HealthHandler.Health)

	if cfg.MetricsHandler != nil {
		engine.GET(cfg.MetricsPath, gin.WrapH(cfg.MetricsHandler))
	}
}
