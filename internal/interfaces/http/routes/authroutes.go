package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/interfaces/http/handlers"
	"github.com/ticketsla/ticketsla/internal/interfaces/http/middleware"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler       *handlers.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
	// RateLimit guards the credential form posts.
	RateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures the login, registration and logout pages.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET(constants.RouteLogin, cfg.AuthHandler.ShowLogin)
	engine.POST(constants.RouteLogin, cfg.RateLimit, cfg.AuthHandler.Login)

	engine.GET(constants.RouteRegister, cfg.AuthHandler.ShowRegister)
	engine.POST(constants.RouteRegister, cfg.RateLimit, cfg.AuthHandler.Register)

	engine.GET(constants.RouteLogout, cfg.SessionMiddleware.RequireSession(), cfg.AuthHandler.Logout)
}
