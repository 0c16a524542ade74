package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ticketusecases "github.com/ticketsla/ticketsla/internal/application/ticket/usecases"
	userusecases "github.com/ticketsla/ticketsla/internal/application/user/usecases"
	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/infrastructure/auth"
	"github.com/ticketsla/ticketsla/internal/infrastructure/cache"
	"github.com/ticketsla/ticketsla/internal/infrastructure/config"
	"github.com/ticketsla/ticketsla/internal/infrastructure/export"
	"github.com/ticketsla/ticketsla/internal/infrastructure/metrics"
	"github.com/ticketsla/ticketsla/internal/infrastructure/ratelimit"
	"github.com/ticketsla/ticketsla/internal/infrastructure/repository"
	"github.com/ticketsla/ticketsla/internal/infrastructure/template"
	"github.com/ticketsla/ticketsla/internal/interfaces/http/handlers"
	"github.com/ticketsla/ticketsla/internal/interfaces/http/middleware"
	"github.com/ticketsla/ticketsla/internal/interfaces/http/routes"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/services/markdown"
)

const sessionStoreRedis = "redis"

// Deps is everything the router needs from the process.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	// Redis is nil when Redis is disabled; sessions then live in the
	// database and rate limiting is off.
	Redis *redis.Client
	// Metrics is nil when metrics are disabled.
	Metrics *metrics.Metrics
	Logger  logger.Interface
}

// Router owns the gin engine with every route wired.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds repositories, use cases and handlers from deps and
// registers all routes. It fails when a page template does not parse.
func NewRouter(deps Deps) (*Router, error) {
	cfg := deps.Config
	log := deps.Logger

	pages := template.NewRenderer(cfg.Dashboard.TemplatesDir, cfg.App.Debug, log)
	if err := pages.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page template: %w", err)
	}

	userRepo := repository.NewUserRepository(deps.DB, log)
	ticketRepo := repository.NewTicketRepository(deps.DB, cfg.Ingestion.BatchSize, log)
	markerRepo := repository.NewImportMarkerRepository(deps.DB)

	var sessionRepo user.SessionRepository
	if cfg.Auth.Session.Store == sessionStoreRedis && deps.Redis != nil {
		sessionRepo = cache.NewRedisSessionStore(deps.Redis)
	} else {
		if cfg.Auth.Session.Store == sessionStoreRedis {
			log.Warnw("redis session store requested but redis is unavailable, using database")
		}
		sessionRepo = repository.NewSessionRepository(deps.DB)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenService := auth.NewSessionTokenService(cfg.Auth.SecretKey)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, tokenService, cfg.Auth.Session.TTL(), log)
	logoutUC := userusecases.NewLogoutUseCase(sessionRepo, log)
	authenticateUC := userusecases.NewAuthenticateUseCase(sessionRepo, tokenService, log)

	getDashboardUC := ticketusecases.NewGetDashboardUseCase(
		ticketRepo,
		markerRepo,
		markdown.NewRenderer(),
		ticketusecases.DashboardOptions{
			Title:    constants.DashboardTitle,
			PageSize: cfg.Dashboard.PageSize,
			BinHours: cfg.Dashboard.HistogramBinHours,
			Notice:   cfg.Dashboard.Notice,
		},
		ticketusecases.AppInfo{
			Version:     cfg.App.Version,
			DeployDate:  cfg.App.DeployDate,
			Environment: cfg.App.Environment,
			Commit:      cfg.App.Commit,
		},
		log,
	)
	exportUC := ticketusecases.NewExportTicketsUseCase(ticketRepo, export.NewXLSXExporter(), log)

	var attempts handlers.AttemptRecorder
	if deps.Metrics != nil {
		attempts = deps.Metrics
	}

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, pages, attempts, cfg.Auth.Cookie, log)
	dashboardHandler := handlers.NewDashboardHandler(getDashboardUC, exportUC, pages, log)
	healthHandler := handlers.NewHealthHandler(handlers.HealthInfo{
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		Commit:      cfg.App.Commit,
	})

	sessionMiddleware := middleware.NewSessionMiddleware(authenticateUC, cfg.Auth.Cookie, log)

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled && deps.Redis != nil {
		limiter = ratelimit.NewFixedWindowLimiter(deps.Redis, cfg.RateLimit.Requests, cfg.RateLimit.Window())
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to configure trusted proxies: %w", err)
	}

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
	}
	engine.Use(middleware.SecurityHeaders())

	systemRoutes := &routes.SystemRouteConfig{HealthHandler: healthHandler}
	if deps.Metrics != nil && cfg.Metrics.Enabled {
		systemRoutes.MetricsHandler = deps.Metrics.Handler()
		systemRoutes.MetricsPath = cfg.Metrics.Path
	}
	routes.SetupSystemRoutes(engine, systemRoutes)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:       authHandler,
		SessionMiddleware: sessionMiddleware,
		RateLimit:         middleware.RateLimit(limiter, "auth", log),
	})

	routes.SetupDashboardRoutes(engine, &routes.DashboardRouteConfig{
		DashboardHandler:  dashboardHandler,
		SessionMiddleware: sessionMiddleware,
	})

	log.Infow("HTTP routes configured",
		"session_store", cfg.Auth.Session.Store,
		"rate_limit", limiter != nil,
		"metrics", systemRoutes.MetricsHandler != nil)

	return &Router{engine: engine}, nil
}

// Handler returns the engine as an http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
