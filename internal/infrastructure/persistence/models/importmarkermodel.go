package models

import (
	"time"

	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

// ImportMarkerModel records one successful ticket import
type ImportMarkerModel struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Source        string    `gorm:"not null;size:255"`
	ContentSHA256 string    `gorm:"column:content_sha256;not null;size:64"`
	RowCount      int       `gorm:"not null"`
	ImportedAt    time.Time `gorm:"not null;index:idx_import_markers_imported_at"`
}

// TableName specifies the table name for GORM
func (ImportMarkerModel) TableName() string {
	return constants.TableImportMarkers
}
