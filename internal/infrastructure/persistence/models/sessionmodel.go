package models

import (
	"time"

	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

// SessionModel represents a server-side login session
type SessionModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index:idx_sessions_user_id"`
	Username  string    `gorm:"not null;size:150"`
	IPAddress string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:512"`
	ExpiresAt time.Time `gorm:"not null;index:idx_sessions_expires_at"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}
