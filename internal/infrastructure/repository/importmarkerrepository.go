package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/mappers"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
	"github.com/ticketsla/ticketsla/internal/shared/db"
)

type ImportMarkerRepository struct {
	db *gorm.DB
}

func NewImportMarkerRepository(gormDB *gorm.DB) ticket.ImportMarkerRepository {
	return &ImportMarkerRepository{db: gormDB}
}

func (r *ImportMarkerRepository) Create(ctx context.Context, marker *ticket.ImportMarker) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.ImportMarkerToModel(marker)).Error; err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

func (r *ImportMarkerRepository) GetLatest(ctx context.Context) (*ticket.ImportMarker, error) {
	var model models.ImportMarkerModel
	err := db.GetTxFromContext(ctx, r.db).Order("imported_at DESC").First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest import: %w", err)
	}
	return mappers.ImportMarkerToDomain(&model), nil
}
