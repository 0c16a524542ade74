package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/mappers"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
	"github.com/ticketsla/ticketsla/internal/shared/db"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

const defaultBatchSize = 500

// TicketRepository implements ticket.Repository with gorm.
type TicketRepository struct {
	db        *gorm.DB
	mapper    mappers.TicketMapper
	batchSize int
	logger    logger.Interface
}

func NewTicketRepository(gormDB *gorm.DB, batchSize int, log logger.Interface) ticket.Repository {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &TicketRepository{
		db:        gormDB,
		mapper:    mappers.NewTicketMapper(),
		batchSize: batchSize,
		logger:    log,
	}
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	rows := r.mapper.ToModels(tickets)
	if err := db.GetTxFromContext(ctx, r.db).CreateInBatches(rows, r.batchSize).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewValidationError("duplicate ticket id", err.Error())
		}
		r.logger.Errorw("failed to insert tickets", "count", len(rows), "error", err)
		return fmt.Errorf("failed to insert tickets: %w", err)
	}

	r.logger.Debugw("tickets inserted", "count", len(rows), "batch_size", r.batchSize)
	return nil
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var rows []*models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("requested ASC").
		Order("ticket_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *TicketRepository) DeleteAll(ctx context.Context) error {
	result := db.GetTxFromContext(ctx, r.db).Where("1 = 1").Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tickets: %w", result.Error)
	}
	r.logger.Infow("tickets deleted", "count", result.RowsAffected)
	return nil
}
