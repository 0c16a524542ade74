package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/interfaces/http/handlers"
	"github.com/ticketsla/ticketsla/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler  *handlers.DashboardHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// SetupDashboardRoutes configures the session-protected dashboard routes.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.SessionMiddleware.RequireSession())
	{
		dashboard.GET("/", cfg.DashboardHandler.Show)
		dashboard.GET("/data", cfg.DashboardHandler.Data)
		dashboard.GET("/export.xlsx", cfg.DashboardHandler.Export)
	}
}
