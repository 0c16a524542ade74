// Package bootstrap prepares the process state shared by every command.
package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/infrastructure/config"
	"github.com/ticketsla/ticketsla/internal/infrastructure/database"
	"github.com/ticketsla/ticketsla/internal/shared/biztime"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

// Flags are the persistent flags every command accepts.
type Flags struct {
	Env       string
	ConfigDir string
}

// LoadConfig resolves the profile and reads configuration, honouring --config.
func LoadConfig(flags Flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigDir != "" {
		cfg, err = config.LoadFrom(flags.Env, flags.ConfigDir)
	} else {
		cfg, err = config.Load(flags.Env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Init loads configuration, sets up logging and the display timezone, and
// opens the database. Callers must call Close when done.
func Init(flags Flags) (*config.Config, logger.Interface, error) {
	cfg, err := LoadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.Init(&cfg.Logger, cfg.App.Debug); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Dashboard.DisplayTimezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize display timezone: %w", err)
	}

	gin.SetMode(ginMode(cfg.Server.Mode))

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

// Close releases what Init opened.
func Close(log logger.Interface) {
	if err := database.Close(); err != nil && log != nil {
		log.Errorw("failed to close database", "error", err)
	}
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, "dev", "development":
		return gin.DebugMode
	case gin.TestMode, "testing":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
