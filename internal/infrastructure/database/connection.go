package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ticketsla/ticketsla/internal/shared/config"
	appLogger "github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

var (
	db        *gorm.DB
	dbDialect Dialect
	dbMu      sync.RWMutex
)

// Open connects to the store named by cfg.URL and verifies it with a ping.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, Dialect, error) {
	dialect, dsn, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, "", err
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.Open(dsn)
	case DialectMySQL:
		dialector = mysql.New(mysql.Config{DSN: dsn, SkipInitializeWithVersion: true})
	default:
		dialector = sqlite.Open(dsn)
	}

	slow := time.Duration(cfg.SlowThresholdMs) * time.Millisecond
	if slow <= 0 {
		slow = 500 * time.Millisecond
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(&filteredLogger{}, logger.Config{
			SlowThreshold:             slow,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if dialect == DialectSQLite {
		// one connection keeps in-memory databases shared and serialises writers
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	return database, dialect, nil
}

// Init opens the process-wide connection.
func Init(cfg *config.DatabaseConfig) error {
	database, dialect, err := Open(cfg)
	if err != nil {
		return err
	}

	dbMu.Lock()
	db = database
	dbDialect = dialect
	dbMu.Unlock()

	appLogger.Info("database connection established",
		"dialect", string(dialect),
		"url", utils.MaskURLPassword(cfg.URL))
	return nil
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// CurrentDialect returns the dialect of the connection opened by Init.
func CurrentDialect() Dialect {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return dbDialect
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// filteredLogger routes gorm output into the application logger.
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "select version()"):
		return
	case strings.Contains(lower, "slow sql"):
		appLogger.Warn("slow query", "details", msg)
	case strings.Contains(lower, "error"):
		appLogger.Error("database error", "details", msg)
	default:
		appLogger.Debug("database query", "details", msg)
	}
}
