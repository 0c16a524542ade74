package models

import (
	"time"

	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex:idx_users_username;not null;size:150"`
	PasswordHash string    `gorm:"not null;size:256"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
