package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormDB.AutoMigrate(models.All()...))
	return gormDB
}

func strPtr(s string) *string { return &s }

func newTicket(t *testing.T, id string, requested time.Time, hours float64) *ticket.Ticket {
	t.Helper()
	closed := requested.Add(time.Duration(hours * float64(time.Hour)))
	tk, err := ticket.NewTicket(id, ticket.Attributes{Subject: strPtr("subject " + id)}, requested, closed)
	require.NoError(t, err)
	return tk
}
