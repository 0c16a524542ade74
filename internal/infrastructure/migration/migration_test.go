package migration

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ticketsla/ticketsla/internal/infrastructure/database"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

var tables = []string{"users", "sessions", "tickets", "import_markers"}

func TestNewManager_PicksStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	assert.Equal(t, "gorm_auto_migrate", NewManager(true, database.DialectSQLite, log).GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager(false, database.DialectSQLite, log).GetStrategy().GetName())
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, NewManager(true, database.DialectSQLite, logger.NewNopLogger()).Migrate(db))

	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openTestDB(t)
	strategy := NewGooseStrategy(database.DialectSQLite, logger.NewNopLogger())

	require.NoError(t, NewManagerWithStrategy(strategy, logger.NewNopLogger()).Migrate(db))
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("users", "idx_users_username"))

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// applying again is a no-op
	require.NoError(t, strategy.Migrate(db))
	require.NoError(t, strategy.Status(db))

	require.NoError(t, strategy.MigrateDown(db, 1))
	for _, table := range tables {
		assert.False(t, db.Migrator().HasTable(table), table)
	}
}

func TestEmbeddedScripts_CoverEveryDialect(t *testing.T) {
	for _, d := range []database.Dialect{database.DialectPostgres, database.DialectMySQL, database.DialectSQLite} {
		entries, err := scripts.ReadDir("scripts/" + string(d))
		require.NoError(t, err, d)
		assert.NotEmpty(t, entries, d)
	}
}

func TestMySQLScript_CaseSensitiveKeys(t *testing.T) {
	raw, err := scripts.ReadFile("scripts/mysql/00001_initial_schema.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.True(t, strings.Contains(schema, "username VARCHAR(150) COLLATE utf8mb4_bin NOT NULL"),
		"usernames compare byte-wise like on postgres and sqlite")
	assert.True(t, strings.Contains(schema, "ticket_id VARCHAR(50) COLLATE utf8mb4_bin NOT NULL PRIMARY KEY"))
}

func TestGooseStrategy_UsernamesAreCaseSensitive(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, NewGooseStrategy(database.DialectSQLite, logger.NewNopLogger()).Migrate(db))

	now := time.Now().UTC()
	insert := "INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)"
	require.NoError(t, db.Exec(insert, "alice", "hash", now).Error)
	require.NoError(t, db.Exec(insert, "Alice", "hash", now).Error)
	assert.Error(t, db.Exec(insert, "alice", "hash", now).Error)
}
